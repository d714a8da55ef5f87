package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodcourt-app/backend/models"
)

// submitPendingOrder membuat order PENDING berisi qty baris PlainItem
// lewat API cart.
func submitPendingOrder(t *testing.T, env *testEnv, quantity int) uint {
	t.Helper()

	w := env.doJSON(t, "POST", "/cart", env.CustomerToken, map[string]interface{}{"branch_id": env.Branch.ID})
	orderID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = env.doJSON(t, "POST", "/cart/items", env.CustomerToken, map[string]interface{}{
		"order_id": orderID,
		"item_id":  env.Item.ID,
		"quantity": quantity,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add item failed: %s", w.Body.String())
	}

	w = env.doJSON(t, "POST", fmt.Sprintf("/cart/%d/checkout", int(orderID)), env.CustomerToken, map[string]interface{}{
		"payment_method": models.PaymentCash,
		"order_type":     models.OrderTypeDineIn,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("checkout failed: %s", w.Body.String())
	}
	return uint(orderID)
}

func TestStaffApproveReservesStock(t *testing.T) {
	env := setupEnv(t)
	orderID := submitPendingOrder(t, env, 2)

	w := env.doJSON(t, "POST", "/staff/orders/approve", env.StaffToken, map[string]interface{}{
		"order_id": orderID,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["requested"])
	assert.Equal(t, float64(1), data["updated"])

	var item models.MenuItem
	env.DB.First(&item, env.Item.ID)
	assert.Equal(t, 1, item.StockQuantity)
}

func TestStaffApproveShortageReturnsInsufficientItems(t *testing.T) {
	env := setupEnv(t)
	orderID := submitPendingOrder(t, env, 3)

	// Stok dikempiskan setelah checkout: butuh 3, tinggal 1
	env.DB.Model(&models.MenuItem{}).Where("id = ?", env.Item.ID).Update("stock_quantity", 1)

	w := env.doJSON(t, "POST", "/staff/orders/approve", env.StaffToken, map[string]interface{}{
		"order_ids": []uint{orderID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	details := decodeBody(t, w)["data"].(map[string]interface{})
	short := details["insufficient_items"].([]interface{})
	assert.Len(t, short, 1)
	entry := short[0].(map[string]interface{})
	assert.Equal(t, float64(env.Item.ID), entry["item_id"])
	assert.Equal(t, float64(3), entry["needed"])
	assert.Equal(t, float64(1), entry["available"])

	// Tidak ada efek samping
	var item models.MenuItem
	env.DB.First(&item, env.Item.ID)
	assert.Equal(t, 1, item.StockQuantity)

	var order models.Order
	env.DB.First(&order, orderID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestStaffEndpointsRejectOtherRoles(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/staff/orders/approve", env.CustomerToken, map[string]interface{}{
		"order_id": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin juga tidak mendapat aksi staff
	adminToken := mustToken(t, 42, models.RoleAdmin, 0)
	w = env.doJSON(t, "POST", "/staff/orders/approve", adminToken, map[string]interface{}{
		"order_id": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChefQueueAndApprove(t *testing.T) {
	env := setupEnv(t)
	orderID := submitPendingOrder(t, env, 1)

	w := env.doJSON(t, "POST", "/staff/orders/approve", env.StaffToken, map[string]interface{}{
		"order_id": orderID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Order muncul di antrean chef
	w = env.doJSON(t, "GET", "/chef/orders", env.ChefToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	orders := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, orders, 1)

	w = env.doJSON(t, "POST", "/chef/orders/approve", env.ChefToken, map[string]interface{}{
		"order_id": orderID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	env.DB.First(&order, orderID)
	assert.Equal(t, models.OrderStatusDelivery, order.Status)
}
