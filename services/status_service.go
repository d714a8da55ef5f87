package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// StatusService menjalankan transisi status order yang di-gate role dan
// branch. Batch bersifat best-effort: hanya id yang masih berada di
// (status, branch) yang diharapkan yang diupdate, sisanya dilewati diam-diam
// supaya race antar actor tidak meledak jadi error.
type StatusService struct {
	DB *gorm.DB
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{DB: db}
}

// TransitionResult melaporkan berapa id yang diminta vs yang benar-benar
// berpindah status.
type TransitionResult struct {
	Requested int    `json:"requested"`
	Updated   int    `json:"updated"`
	OrderIDs  []uint `json:"order_ids"`
}

// transitionRoles: from -> to -> role yang diizinkan.
// PENDING -> PREPARING tidak ada di sini karena lewat StockService
// (butuh reservasi stok dalam transaksi yang sama).
var transitionRoles = map[string]map[string]string{
	models.OrderStatusPending: {
		models.OrderStatusCanceled: models.RoleStaff,
	},
	models.OrderStatusPreparing: {
		models.OrderStatusDelivery: models.RoleChef,
		models.OrderStatusCanceled: models.RoleChef,
	},
	models.OrderStatusDelivery: {
		models.OrderStatusCompleted: models.RoleShipper,
		models.OrderStatusCanceled:  models.RoleShipper,
	},
}

// Transition memindahkan subset order yang cocok dari `from` ke `to`.
func (s *StatusService) Transition(actor models.Actor, orderIDs []uint, from, to string) (*TransitionResult, error) {
	if len(orderIDs) == 0 {
		return nil, utils.NewValidationError("order_id or order_ids is required")
	}

	role, ok := transitionRoles[from][to]
	if !ok {
		return nil, utils.NewBusinessError(fmt.Sprintf("transition %s -> %s is not allowed", from, to), nil)
	}
	if actor.Role != role {
		return nil, utils.NewForbiddenError(fmt.Sprintf("%s role required", role))
	}
	if actor.BranchID == 0 {
		return nil, utils.NewForbiddenError("actor has no branch assignment")
	}

	result := &TransitionResult{Requested: len(orderIDs)}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		matched, err := matchingOrderIDs(tx, orderIDs, from, actor.BranchID)
		if err != nil {
			return err
		}
		if len(matched) == 0 {
			return nil
		}

		res := tx.Model(&models.Order{}).
			Where("id IN ? AND status = ? AND branch_id = ?", matched, from, actor.BranchID).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}

		result.Updated = int(res.RowsAffected)
		result.OrderIDs = matched
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("order transition %s -> %s by user %d: %d/%d updated",
		from, to, actor.UserID, result.Updated, result.Requested)
	return result, nil
}

// ListByStatus mengembalikan antrean order branch actor pada status tertentu.
func (s *StatusService) ListByStatus(actor models.Actor, status string) ([]models.Order, error) {
	if actor.BranchID == 0 {
		return nil, utils.NewForbiddenError("actor has no branch assignment")
	}

	var orders []models.Order
	err := s.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Where("branch_id = ? AND status = ?", actor.BranchID, status).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// matchingOrderIDs menyaring id yang saat ini ada di (status, branch)
// yang diharapkan. Id yang tidak cocok dilewati, bukan error.
func matchingOrderIDs(tx *gorm.DB, orderIDs []uint, status string, branchID uint) ([]uint, error) {
	var matched []uint
	err := tx.Model(&models.Order{}).
		Where("id IN ? AND status = ? AND branch_id = ?", orderIDs, status, branchID).
		Pluck("id", &matched).Error
	if err != nil {
		return nil, err
	}
	return matched, nil
}
