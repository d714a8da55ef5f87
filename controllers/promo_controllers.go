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

type PromoController struct {
	DB      *gorm.DB
	Service *services.PromotionService
}

func NewPromoController(db *gorm.DB) *PromoController {
	return &PromoController{DB: db, Service: services.NewPromotionService(db)}
}

// ApplyPromo -> hitung ulang discount_amount dan final_price order
func (pc *PromoController) ApplyPromo(c *gin.Context) {
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

	type ReqBody struct {
		PromoID uint `json:"promo_id" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := pc.Service.ApplyPromo(actor, uint(orderID), body.PromoID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Promotion applied", order)
}
