package models

import "time"

type MenuCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);unique" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type MenuItem struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	BranchID      uint          `gorm:"not null;index" json:"branch_id"`
	Branch        Branch        `gorm:"foreignKey:BranchID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CategoryID    uint          `gorm:"not null" json:"category_id"`
	Category      MenuCategory  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name          string        `gorm:"type:varchar(255); not null" json:"name"`
	Price         float64       `gorm:"type:decimal(10,2); not null" json:"price"`
	StockQuantity int           `gorm:"not null;default:0" json:"stock_quantity"`
	IsAvailable   bool          `gorm:"not null;default:false" json:"is_available"`
	Description   string        `gorm:"type:text" json:"description"`
	ImageUrl      *string       `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	OptionGroups  []OptionGroup `gorm:"foreignKey:MenuItemID" json:"option_groups,omitempty"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}
