package models

import "time"

// Selection type untuk option group
const (
	SelectionSingle = "SINGLE"
	SelectionMulti  = "MULTI"
)

// OptionGroup adalah atribut configurable dari satu menu item
// (mis. "Size", "Topping"). SINGLE = maksimal satu pilihan.
type OptionGroup struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	MenuItemID    uint           `gorm:"not null;index" json:"menu_item_id"`
	Name          string         `gorm:"type:varchar(100);not null" json:"name"`
	SelectionType string         `gorm:"type:varchar(10);not null;default:'SINGLE'" json:"selection_type"`
	IsRequired    bool           `gorm:"not null;default:false" json:"is_required"`
	SortOrder     int            `gorm:"not null;default:0" json:"sort_order"`
	Choices       []OptionChoice `gorm:"foreignKey:GroupID" json:"choices,omitempty"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

type OptionChoice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GroupID    uint      `gorm:"not null;index" json:"group_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	PriceDelta float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price_delta"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// OptionSelection adalah satu pilihan (group, choice) yang dikirim client
// saat menambahkan item ke cart.
type OptionSelection struct {
	GroupID  uint `json:"group_id" binding:"required"`
	ChoiceID uint `json:"choice_id" binding:"required"`
}

// SelectedOption adalah snapshot pilihan yang disimpan di order item,
// supaya cart tetap bisa dibaca walau master option berubah.
type SelectedOption struct {
	GroupID    uint    `json:"group_id"`
	GroupName  string  `json:"group_name"`
	ChoiceID   uint    `json:"choice_id"`
	ChoiceName string  `json:"choice_name"`
	PriceDelta float64 `json:"price_delta"`
}
