package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// PromotionService menghitung diskon order-level dari promo aktif.
// Hasilnya dibatalkan oleh CartService pada setiap mutasi cart, jadi
// diskon tidak pernah diam-diam selamat dari perubahan isi cart.
type PromotionService struct {
	DB *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

// ApplyPromo memverifikasi kepemilikan, kecocokan branch, dan window
// [start, end), lalu menghitung discount_amount dan final_price.
func (s *PromotionService) ApplyPromo(actor models.Actor, orderID, promoID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("order not found")
			}
			return err
		}
		if actor.Role != models.RoleAdmin && order.UserID != actor.UserID {
			return utils.NewForbiddenError("not your order")
		}
		if !order.IsEditable() {
			return utils.NewBusinessError("promo can only be applied before checkout", nil)
		}

		var promo models.Promotion
		if err := tx.First(&promo, promoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("promotion not found")
			}
			return err
		}
		if !promo.AppliesToBranch(order.BranchID) {
			return utils.NewBusinessError("promotion is not valid for this branch", nil)
		}
		if !promo.ActiveAt(time.Now()) {
			return utils.NewBusinessError("promotion is not active", nil)
		}

		discount, err := computeDiscount(&promo, order.TotalPrice)
		if err != nil {
			return err
		}

		order.DiscountAmount = discount
		order.FinalPrice = order.TotalPrice - discount
		order.PromoID = &promo.ID
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func computeDiscount(promo *models.Promotion, total float64) (float64, error) {
	switch promo.DiscountType {
	case models.DiscountPercent:
		if promo.Value <= 0 || promo.Value > 100 {
			return 0, utils.NewBusinessError("promotion has an invalid percentage", nil)
		}
		return total * promo.Value / 100, nil
	case models.DiscountAmount:
		if promo.Value <= 0 {
			return 0, utils.NewBusinessError("promotion has an invalid amount", nil)
		}
		// Diskon nominal tidak boleh melebihi total
		if promo.Value > total {
			return total, nil
		}
		return promo.Value, nil
	default:
		return 0, utils.NewBusinessError("unknown discount type", nil)
	}
}
