package models

import "time"

// Status import receipt
const (
	ImportStatusPending   = "PENDING"
	ImportStatusCompleted = "COMPLETED"
	ImportStatusCanceled  = "CANCELED"
)

// ImportReceipt adalah batch penerimaan barang per branch.
// Stok baru bertambah saat receipt dikonfirmasi, bukan saat baris ditambahkan.
type ImportReceipt struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	BranchID  uint         `gorm:"not null;index" json:"branch_id"`
	Branch    Branch       `gorm:"foreignKey:BranchID" json:"-"`
	StaffID   uint         `gorm:"not null" json:"staff_id"`
	Staff     User         `gorm:"foreignKey:StaffID" json:"-"`
	Status    string       `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Note      string       `gorm:"type:text" json:"note"`
	Items     []ImportItem `gorm:"foreignKey:ImportID" json:"items"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

type ImportItem struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	ImportID   uint          `gorm:"not null;index" json:"import_id"`
	Import     ImportReceipt `gorm:"foreignKey:ImportID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint          `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem      `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	Quantity   int           `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"not null" json:"updated_at"`
}
