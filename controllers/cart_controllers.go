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

type CartController struct {
	DB      *gorm.DB
	Service *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db, Service: services.NewCartService(db)}
}

// CreateCart -> find-or-create order DRAFT untuk (user, branch).
// 200 kalau cart lama dipakai lagi, 201 kalau baru dibuat.
func (cc *CartController) CreateCart(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	type ReqBody struct {
		BranchID uint `json:"branch_id" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, created, err := cc.Service.FindOrCreateDraft(actor, body.BranchID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if created {
		utils.RespondJSON(c, http.StatusCreated, "Cart created", order)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Existing cart", order)
}

// AddItem -> tambah/merge baris cart
func (cc *CartController) AddItem(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var input services.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := cc.Service.AddItem(actor, input)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", order)
}

// UpdateItem -> ubah quantity satu baris
func (cc *CartController) UpdateItem(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	type ReqBody struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := cc.Service.UpdateItemQuantity(actor, uint(itemID), body.Quantity)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item updated", order)
}

// RemoveItem -> hapus satu baris dari cart
func (cc *CartController) RemoveItem(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	order, err := cc.Service.RemoveItem(actor, uint(itemID))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed", order)
}

// GetCart -> order + baris dengan options terdecode
func (cc *CartController) GetCart(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := cc.Service.GetCart(actor, uint(orderID))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart detail", order)
}

// Checkout -> DRAFT menjadi PENDING dengan guard field per order type
func (cc *CartController) Checkout(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var input services.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := cc.Service.Checkout(actor, uint(orderID), input)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order submitted", order)
}
