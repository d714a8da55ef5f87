package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// CartService memegang semua mutasi order selama masih DRAFT:
// tambah/ubah/hapus baris, hitung ulang agregat, invalidasi promo.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

type AddItemInput struct {
	OrderID    uint                     `json:"order_id" binding:"required"`
	MenuItemID uint                     `json:"item_id" binding:"required"`
	Quantity   int                      `json:"quantity" binding:"required"`
	Selections []models.OptionSelection `json:"selectedOptions"`
	Notes      string                   `json:"notes"`
}

type CheckoutInput struct {
	PaymentMethod   string     `json:"payment_method"`
	OrderType       string     `json:"order_type"`
	DeliveryAddress string     `json:"delivery_address"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

// FindOrCreateDraft mengembalikan satu-satunya order DRAFT milik
// (user, branch), membuat baru kalau belum ada. Return kedua = true
// kalau order baru dibuat.
func (s *CartService) FindOrCreateDraft(actor models.Actor, branchID uint) (*models.Order, bool, error) {
	var branch models.Branch
	if err := s.DB.First(&branch, branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, utils.NewNotFoundError("branch not found")
		}
		return nil, false, err
	}

	var order models.Order
	err := s.DB.Preload("OrderItems").
		Where("user_id = ? AND branch_id = ? AND status = ?", actor.UserID, branchID, models.OrderStatusDraft).
		First(&order).Error
	if err == nil {
		return &order, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	order = models.Order{
		UserID:   actor.UserID,
		BranchID: branchID,
		Status:   models.OrderStatusDraft,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return nil, false, err
	}
	return &order, true, nil
}

// GetCart memuat order beserta baris dan options terdecode.
// Customer hanya boleh melihat order miliknya; role branch hanya
// order di branch-nya.
func (s *CartService) GetCart(actor models.Actor, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("order not found")
		}
		return nil, err
	}

	switch {
	case actor.Role == models.RoleAdmin:
	case actor.IsBranchBound():
		if order.BranchID != actor.BranchID {
			return nil, utils.NewForbiddenError("order belongs to a different branch")
		}
	default:
		if order.UserID != actor.UserID {
			return nil, utils.NewForbiddenError("not your order")
		}
	}
	return &order, nil
}

// AddItem menambahkan item ke cart. Pilihan option dinormalisasi dan
// di-hash; baris dengan (item, options_hash) sama di-merge, bukan diduplikasi.
func (s *CartService) AddItem(actor models.Actor, in AddItemInput) (*models.Order, error) {
	if in.Quantity < 1 {
		return nil, utils.NewValidationError("quantity must be at least 1")
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.loadEditableOrder(tx, actor, in.OrderID)
		if err != nil {
			return err
		}
		orderID = order.ID

		var item models.MenuItem
		if err := tx.Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).Preload("OptionGroups.Choices").First(&item, in.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("menu item not found")
			}
			return err
		}
		if item.BranchID != order.BranchID {
			return utils.NewValidationError("menu item belongs to a different branch")
		}
		if !item.IsAvailable {
			return utils.NewBusinessError(fmt.Sprintf("menu item '%s' is not available", item.Name), nil)
		}

		unitPrice, snapshot, err := resolveSelections(&item, in.Selections)
		if err != nil {
			return err
		}

		normalized := NormalizeSelections(in.Selections)
		optionsHash := HashSelections(normalized)

		var existing models.OrderItem
		findErr := tx.Where("order_id = ? AND menu_item_id = ? AND options_hash = ?", order.ID, item.ID, optionsHash).
			First(&existing).Error

		if findErr == nil {
			// Baris identik sudah ada -> merge quantity
			newQty := existing.Quantity + in.Quantity
			if newQty > item.StockQuantity {
				return insufficientStockError(&item, newQty)
			}
			existing.Quantity = newQty
			existing.LineTotal = existing.UnitPrice * float64(newQty)
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		} else if errors.Is(findErr, gorm.ErrRecordNotFound) {
			if in.Quantity > item.StockQuantity {
				return insufficientStockError(&item, in.Quantity)
			}
			optionsJSON, err := json.Marshal(snapshot)
			if err != nil {
				return err
			}
			line := models.OrderItem{
				OrderID:        order.ID,
				MenuItemID:     item.ID,
				Quantity:       in.Quantity,
				UnitPrice:      unitPrice,
				LineTotal:      unitPrice * float64(in.Quantity),
				Options:        string(optionsJSON),
				OptionsSummary: BuildOptionsSummary(snapshot),
				OptionsHash:    optionsHash,
				Notes:          in.Notes,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		} else {
			return findErr
		}

		return s.recalcAggregates(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(actor, orderID)
}

// UpdateItemQuantity mengubah quantity satu baris. Quantity di bawah 1
// bukan input yang diterima di sini; caller harus pakai RemoveItem.
func (s *CartService) UpdateItemQuantity(actor models.Actor, orderItemID uint, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, utils.NewValidationError("quantity must be at least 1; remove the item instead")
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		line, order, err := s.loadEditableLine(tx, actor, orderItemID)
		if err != nil {
			return err
		}
		orderID = order.ID

		if line.Quantity == quantity {
			return utils.NewBusinessError("quantity is unchanged", nil)
		}

		// Validasi terhadap stok item saat ini, bukan snapshot lama
		var item models.MenuItem
		if err := tx.First(&item, line.MenuItemID).Error; err != nil {
			return err
		}
		if quantity > item.StockQuantity {
			return insufficientStockError(&item, quantity)
		}

		line.Quantity = quantity
		line.LineTotal = line.UnitPrice * float64(quantity)
		if err := tx.Save(line).Error; err != nil {
			return err
		}

		return s.recalcAggregates(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(actor, orderID)
}

// RemoveItem menghapus satu baris dari cart.
func (s *CartService) RemoveItem(actor models.Actor, orderItemID uint) (*models.Order, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		line, order, err := s.loadEditableLine(tx, actor, orderItemID)
		if err != nil {
			return err
		}
		orderID = order.ID

		if err := tx.Delete(&models.OrderItem{}, line.ID).Error; err != nil {
			return err
		}

		return s.recalcAggregates(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(actor, orderID)
}

// Checkout memindahkan DRAFT -> PENDING. Guard masuk state-nya sendiri:
// cart tidak boleh kosong, payment method dikenal, order type menentukan
// field mana yang wajib. Stok TIDAK disentuh di sini (baru di approval).
func (s *CartService) Checkout(actor models.Actor, orderID uint, in CheckoutInput) (*models.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.loadEditableOrder(tx, actor, orderID)
		if err != nil {
			return err
		}

		var lineCount int64
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&lineCount).Error; err != nil {
			return err
		}
		if lineCount == 0 {
			return utils.NewBusinessError("cannot checkout an empty cart", nil)
		}

		switch in.PaymentMethod {
		case models.PaymentCash, models.PaymentTransfer, models.PaymentEWallet:
		case "":
			return utils.NewValidationError("payment_method is required")
		default:
			return utils.NewValidationError("unknown payment_method")
		}

		switch in.OrderType {
		case models.OrderTypeDineIn:
			if in.ScheduledAt != nil && !in.ScheduledAt.After(time.Now()) {
				return utils.NewValidationError("scheduled_at must be in the future")
			}
		case models.OrderTypeDelivery:
			if in.DeliveryAddress == "" {
				return utils.NewValidationError("delivery_address is required for delivery orders")
			}
		case "":
			return utils.NewValidationError("order_type is required")
		default:
			return utils.NewValidationError("unknown order_type")
		}

		order.Status = models.OrderStatusPending
		order.PaymentMethod = in.PaymentMethod
		order.OrderType = in.OrderType
		order.DeliveryAddress = in.DeliveryAddress
		order.ScheduledAt = in.ScheduledAt
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(actor, orderID)
}

// loadEditableOrder memuat order dan memastikan actor boleh memutasinya
// dan statusnya masih DRAFT.
func (s *CartService) loadEditableOrder(tx *gorm.DB, actor models.Actor, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := tx.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("order not found")
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin && order.UserID != actor.UserID {
		return nil, utils.NewForbiddenError("not your order")
	}
	if !order.IsEditable() {
		return nil, utils.NewBusinessError(fmt.Sprintf("order is %s and can no longer be modified", order.Status), nil)
	}
	return &order, nil
}

func (s *CartService) loadEditableLine(tx *gorm.DB, actor models.Actor, orderItemID uint) (*models.OrderItem, *models.Order, error) {
	var line models.OrderItem
	if err := tx.First(&line, orderItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NewNotFoundError("order item not found")
		}
		return nil, nil, err
	}
	order, err := s.loadEditableOrder(tx, actor, line.OrderID)
	if err != nil {
		return nil, nil, err
	}
	return &line, order, nil
}

// recalcAggregates menghitung ulang total dari semua baris dan mereset
// promo yang pernah diterapkan. Diskon basi lebih buruk daripada tanpa
// diskon, jadi setiap mutasi cart membatalkan promo.
func (s *CartService) recalcAggregates(tx *gorm.DB, orderID uint) error {
	var lines []models.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&lines).Error; err != nil {
		return err
	}

	var total float64
	for _, line := range lines {
		total += line.LineTotal
	}

	return tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"total_price":     total,
		"discount_amount": 0,
		"promo_id":        nil,
		"final_price":     total,
		"updated_at":      time.Now(),
	}).Error
}

// resolveSelections memvalidasi pilihan terhadap option group milik item
// dan menghitung unit price + snapshot pilihan.
func resolveSelections(item *models.MenuItem, selections []models.OptionSelection) (float64, []models.SelectedOption, error) {
	groups := make(map[uint]*models.OptionGroup, len(item.OptionGroups))
	choices := make(map[uint]map[uint]*models.OptionChoice, len(item.OptionGroups))
	for i := range item.OptionGroups {
		group := &item.OptionGroups[i]
		groups[group.ID] = group
		byID := make(map[uint]*models.OptionChoice, len(group.Choices))
		for j := range group.Choices {
			byID[group.Choices[j].ID] = &group.Choices[j]
		}
		choices[group.ID] = byID
	}

	unitPrice := item.Price
	snapshot := make([]models.SelectedOption, 0, len(selections))
	countPerGroup := make(map[uint]int)
	seen := make(map[models.OptionSelection]bool)

	for _, sel := range NormalizeSelections(selections) {
		if seen[sel] {
			return 0, nil, utils.NewValidationError(fmt.Sprintf("duplicate selection for choice %d", sel.ChoiceID))
		}
		seen[sel] = true

		group, ok := groups[sel.GroupID]
		if !ok {
			return 0, nil, utils.NewBusinessError(fmt.Sprintf("option group %d does not belong to this item", sel.GroupID), nil)
		}
		choice, ok := choices[sel.GroupID][sel.ChoiceID]
		if !ok {
			return 0, nil, utils.NewBusinessError(fmt.Sprintf("option choice %d does not belong to group %d", sel.ChoiceID, sel.GroupID), nil)
		}

		countPerGroup[group.ID]++
		if group.SelectionType == models.SelectionSingle && countPerGroup[group.ID] > 1 {
			return 0, nil, utils.NewBusinessError(fmt.Sprintf("option group '%s' allows only one choice", group.Name), nil)
		}

		unitPrice += choice.PriceDelta
		snapshot = append(snapshot, models.SelectedOption{
			GroupID:    group.ID,
			GroupName:  group.Name,
			ChoiceID:   choice.ID,
			ChoiceName: choice.Name,
			PriceDelta: choice.PriceDelta,
		})
	}

	for _, group := range item.OptionGroups {
		if group.IsRequired && countPerGroup[group.ID] == 0 {
			return 0, nil, utils.NewBusinessError(fmt.Sprintf("MissingRequiredGroup: option group '%s' requires a selection", group.Name), nil)
		}
	}

	return unitPrice, snapshot, nil
}

func insufficientStockError(item *models.MenuItem, requested int) *utils.AppError {
	return utils.NewBusinessError(
		fmt.Sprintf("insufficient stock for '%s': %d left", item.Name, item.StockQuantity),
		map[string]interface{}{
			"item_id":   item.ID,
			"requested": requested,
			"available": item.StockQuantity,
		},
	)
}
