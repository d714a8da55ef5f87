package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodcourt-app/backend/models"
)

func TestImportWorkflowOverHTTP(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/import", env.StaffToken, map[string]interface{}{
		"note": "weekly delivery",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	importID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = env.doJSON(t, "POST", "/import/add", env.StaffToken, map[string]interface{}{
		"import_id": importID,
		"items": []map[string]interface{}{
			{"item_id": env.Item.ID, "quantity": 40},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, "PUT", fmt.Sprintf("/import/confirm/%d", int(importID)), env.StaffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var item models.MenuItem
	env.DB.First(&item, env.Item.ID)
	assert.Equal(t, 43, item.StockQuantity)
	assert.True(t, item.IsAvailable)
}

func TestImportRequiresStaffRole(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "POST", "/import", env.CustomerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestImportConfirmUnknownReceiptReturns404(t *testing.T) {
	env := setupEnv(t)

	w := env.doJSON(t, "PUT", "/import/confirm/999", env.StaffToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
