package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCartFindOrCreate(t *testing.T) {
	env := setupEnv(t)

	payload := map[string]interface{}{"branch_id": env.Branch.ID}

	w := env.doJSON(t, "POST", "/cart", env.CustomerToken, payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Cart created", resp["message"])
	firstID := resp["data"].(map[string]interface{})["id"].(float64)

	// Panggilan kedua memakai cart yang sama -> 200
	w = env.doJSON(t, "POST", "/cart", env.CustomerToken, payload)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, "Existing cart", resp["message"])
	assert.Equal(t, firstID, resp["data"].(map[string]interface{})["id"].(float64))
}

func TestCartRequiresAuth(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/cart", "", map[string]interface{}{"branch_id": env.Branch.ID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddItemAndGetCart(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/cart", env.CustomerToken, map[string]interface{}{"branch_id": env.Branch.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = env.doJSON(t, "POST", "/cart/items", env.CustomerToken, map[string]interface{}{
		"order_id": orderID,
		"item_id":  env.Item.ID,
		"quantity": 2,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, "GET", fmt.Sprintf("/cart/%d", int(orderID)), env.CustomerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(100000), data["total_price"])
	assert.Equal(t, float64(100000), data["final_price"])
	items := data["order_items"].([]interface{})
	assert.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), line["quantity"])
	// Options terdecode ikut di payload
	_, hasOptions := line["selected_options"]
	assert.True(t, hasOptions)
}

func TestAddItemInsufficientStockReturns400(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/cart", env.CustomerToken, map[string]interface{}{"branch_id": env.Branch.ID})
	orderID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	// Stok item hanya 3
	w = env.doJSON(t, "POST", "/cart/items", env.CustomerToken, map[string]interface{}{
		"order_id": orderID,
		"item_id":  env.Item.ID,
		"quantity": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["status"])
	details := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), details["available"])
}

func TestAddItemUnknownItemReturns404(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/cart", env.CustomerToken, map[string]interface{}{"branch_id": env.Branch.ID})
	orderID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = env.doJSON(t, "POST", "/cart/items", env.CustomerToken, map[string]interface{}{
		"order_id": orderID,
		"item_id":  99999,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
