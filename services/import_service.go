package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// ImportService menangani workflow penerimaan barang: receipt dibuat
// PENDING, baris ditambahkan, lalu konfirmasi menambah stok lewat
// StockService dalam satu transaksi.
type ImportService struct {
	DB    *gorm.DB
	Stock *StockService
}

func NewImportService(db *gorm.DB, stock *StockService) *ImportService {
	return &ImportService{DB: db, Stock: stock}
}

type ImportLineInput struct {
	MenuItemID uint `json:"item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// CreateReceipt membuat receipt PENDING untuk branch si staff.
func (s *ImportService) CreateReceipt(actor models.Actor, note string) (*models.ImportReceipt, error) {
	if actor.BranchID == 0 {
		return nil, utils.NewForbiddenError("actor has no branch assignment")
	}

	receipt := models.ImportReceipt{
		BranchID: actor.BranchID,
		StaffID:  actor.UserID,
		Status:   models.ImportStatusPending,
		Note:     note,
	}
	if err := s.DB.Create(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

// AddItems menyisipkan baris-baris receipt secara bulk dalam satu
// transaksi; gagal satu berarti tidak ada baris yang masuk.
func (s *ImportService) AddItems(actor models.Actor, importID uint, lines []ImportLineInput) (*models.ImportReceipt, error) {
	if len(lines) == 0 {
		return nil, utils.NewValidationError("items is required")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		receipt, err := s.loadPendingReceipt(tx, actor, importID)
		if err != nil {
			return err
		}

		rows := make([]models.ImportItem, 0, len(lines))
		for _, line := range lines {
			if line.Quantity < 1 {
				return utils.NewValidationError("quantity must be at least 1")
			}

			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewNotFoundError(fmt.Sprintf("menu item %d not found", line.MenuItemID))
				}
				return err
			}
			if item.BranchID != receipt.BranchID {
				return utils.NewValidationError(fmt.Sprintf("menu item %d belongs to a different branch", item.ID))
			}

			rows = append(rows, models.ImportItem{
				ImportID:   receipt.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			})
		}

		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetReceipt(actor, importID)
}

// Confirm menyelesaikan receipt: setiap baris menambah stok item dan
// availability dihitung ulang, semuanya dalam satu transaksi.
func (s *ImportService) Confirm(actor models.Actor, importID uint) (*models.ImportReceipt, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		receipt, err := s.loadPendingReceipt(tx, actor, importID)
		if err != nil {
			return err
		}

		var items []models.ImportItem
		if err := tx.Where("import_id = ?", receipt.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return utils.NewBusinessError("cannot confirm an empty import receipt", nil)
		}

		for _, line := range items {
			if err := s.Stock.Replenish(tx, line.MenuItemID, line.Quantity); err != nil {
				return err
			}
		}

		return tx.Model(&models.ImportReceipt{}).Where("id = ?", receipt.ID).
			Update("status", models.ImportStatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetReceipt(actor, importID)
}

// GetReceipt memuat receipt beserta baris dan item terkait.
func (s *ImportService) GetReceipt(actor models.Actor, importID uint) (*models.ImportReceipt, error) {
	var receipt models.ImportReceipt
	if err := s.DB.Preload("Items").Preload("Items.MenuItem").First(&receipt, importID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("import receipt not found")
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin && receipt.BranchID != actor.BranchID {
		return nil, utils.NewForbiddenError("import receipt belongs to a different branch")
	}
	return &receipt, nil
}

func (s *ImportService) loadPendingReceipt(tx *gorm.DB, actor models.Actor, importID uint) (*models.ImportReceipt, error) {
	var receipt models.ImportReceipt
	if err := tx.First(&receipt, importID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("import receipt not found")
		}
		return nil, err
	}
	if receipt.BranchID != actor.BranchID {
		return nil, utils.NewForbiddenError("import receipt belongs to a different branch")
	}
	if receipt.Status != models.ImportStatusPending {
		return nil, utils.NewBusinessError(fmt.Sprintf("import receipt is already %s", receipt.Status), nil)
	}
	return &receipt, nil
}
