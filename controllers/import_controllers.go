package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/middlewares"
	"github.com/foodcourt-app/backend/services"
	"github.com/foodcourt-app/backend/utils"
)

// ImportController menangani workflow penerimaan barang per branch.
type ImportController struct {
	DB      *gorm.DB
	Service *services.ImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{
		DB:      db,
		Service: services.NewImportService(db, services.NewStockService(db)),
	}
}

// CreateReceipt -> buat receipt PENDING baru untuk branch staff
func (ic *ImportController) CreateReceipt(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	type ReqBody struct {
		Note string `json:"note"`
	}
	var body ReqBody
	// Body opsional; receipt kosong tetap valid
	_ = c.ShouldBindJSON(&body)

	receipt, err := ic.Service.CreateReceipt(actor, body.Note)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Import receipt created", receipt)
}

// AddItems -> bulk insert baris receipt dalam satu transaksi
func (ic *ImportController) AddItems(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	type ReqBody struct {
		ImportID uint                       `json:"import_id" binding:"required"`
		Items    []services.ImportLineInput `json:"items" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	receipt, err := ic.Service.AddItems(actor, body.ImportID, body.Items)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Import items added", receipt)
}

// ConfirmReceipt -> selesaikan receipt dan tambahkan stok
func (ic *ImportController) ConfirmReceipt(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	importID, err := strconv.ParseUint(c.Param("import_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid import id"))
		return
	}

	receipt, err := ic.Service.Confirm(actor, uint(importID))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Import receipt confirmed", receipt)
}

// GetReceipt -> detail receipt + baris
func (ic *ImportController) GetReceipt(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	importID, err := strconv.ParseUint(c.Param("import_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid import id"))
		return
	}

	receipt, err := ic.Service.GetReceipt(actor, uint(importID))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Import receipt detail", receipt)
}
