package services

import (
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/events"
	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// StockService memegang dua mutasi stok: reservasi batch saat approval
// (PENDING -> PREPARING) dan penambahan stok saat import dikonfirmasi.
type StockService struct {
	DB *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{DB: db}
}

// InsufficientItem adalah satu entri di detail error kekurangan stok.
type InsufficientItem struct {
	ItemID    uint   `json:"item_id"`
	Name      string `json:"name"`
	Needed    int    `json:"needed"`
	Available int    `json:"available"`
}

type itemDemand struct {
	MenuItemID uint
	Needed     int
}

// ApproveOrders memindahkan order PENDING milik branch staff ke PREPARING
// dengan mendekremen stok. Semantik all-or-nothing: kalau SATU item saja
// kurang, tidak ada stok maupun status yang berubah, dan semua item yang
// kurang dilaporkan sekaligus. Pengecekan, dekremen, dan update status
// terjadi dalam satu transaksi.
func (s *StockService) ApproveOrders(actor models.Actor, orderIDs []uint) (*TransitionResult, error) {
	if len(orderIDs) == 0 {
		return nil, utils.NewValidationError("order_id or order_ids is required")
	}
	if actor.Role != models.RoleStaff {
		return nil, utils.NewForbiddenError("staff role required")
	}
	if actor.BranchID == 0 {
		return nil, utils.NewForbiddenError("actor has no branch assignment")
	}

	result := &TransitionResult{Requested: len(orderIDs)}
	var depleted []models.MenuItem

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		matched, err := matchingOrderIDs(tx, orderIDs, models.OrderStatusPending, actor.BranchID)
		if err != nil {
			return err
		}
		if len(matched) == 0 {
			// Semua id sudah digerakkan actor lain; bukan error
			return nil
		}

		// Agregasi kebutuhan per item dari semua baris order yang lolos
		var demands []itemDemand
		if err := tx.Model(&models.OrderItem{}).
			Select("menu_item_id, SUM(quantity) as needed").
			Where("order_id IN ?", matched).
			Group("menu_item_id").
			Scan(&demands).Error; err != nil {
			return err
		}

		itemIDs := make([]uint, 0, len(demands))
		neededByItem := make(map[uint]int, len(demands))
		for _, d := range demands {
			itemIDs = append(itemIDs, d.MenuItemID)
			neededByItem[d.MenuItemID] = d.Needed
		}

		var items []models.MenuItem
		if err := tx.Where("id IN ?", itemIDs).Find(&items).Error; err != nil {
			return err
		}

		var short []InsufficientItem
		for _, item := range items {
			needed := neededByItem[item.ID]
			if needed > item.StockQuantity {
				short = append(short, InsufficientItem{
					ItemID:    item.ID,
					Name:      item.Name,
					Needed:    needed,
					Available: item.StockQuantity,
				})
			}
		}
		if len(short) > 0 {
			return utils.NewBusinessError("insufficient stock for one or more items", map[string]interface{}{
				"insufficient_items": short,
			})
		}

		for _, item := range items {
			remaining := item.StockQuantity - neededByItem[item.ID]
			if err := tx.Model(&models.MenuItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
				"stock_quantity": remaining,
				"is_available":   remaining > 0,
			}).Error; err != nil {
				return err
			}
			if remaining <= 0 {
				item.StockQuantity = remaining
				item.IsAvailable = false
				depleted = append(depleted, item)
			}
		}

		res := tx.Model(&models.Order{}).
			Where("id IN ? AND status = ? AND branch_id = ?", matched, models.OrderStatusPending, actor.BranchID).
			Update("status", models.OrderStatusPreparing)
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

	for _, item := range depleted {
		events.BroadcastStockLow(item)
	}

	utils.InfoLogger.Printf("stock reserved for %d order(s) at branch %d by user %d",
		result.Updated, actor.BranchID, actor.UserID)
	return result, nil
}

// Replenish menambah stok satu item dan menyalakan kembali availability
// bila hasilnya > 0. Harus dipanggil di dalam transaksi pemanggil.
func (s *StockService) Replenish(tx *gorm.DB, itemID uint, quantity int) error {
	var item models.MenuItem
	if err := tx.First(&item, itemID).Error; err != nil {
		return err
	}

	remaining := item.StockQuantity + quantity
	return tx.Model(&models.MenuItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"stock_quantity": remaining,
		"is_available":   remaining > 0,
	}).Error
}
