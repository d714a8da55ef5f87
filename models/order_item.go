package models

import (
	"encoding/json"
	"time"
)

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal  float64  `gorm:"type:decimal(10,2);not null" json:"line_total"`
	// Options menyimpan snapshot pilihan dalam JSON; OptionsHash adalah
	// digest kanonik yang dipakai untuk merge baris identik.
	Options        string    `gorm:"type:text" json:"-"`
	OptionsSummary string    `gorm:"type:text" json:"options_summary"`
	OptionsHash    string    `gorm:"type:varchar(64);not null;index" json:"options_hash"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// DecodedOptions mengembalikan snapshot pilihan dari kolom Options.
func (oi *OrderItem) DecodedOptions() []SelectedOption {
	var opts []SelectedOption
	if oi.Options == "" {
		return opts
	}
	if err := json.Unmarshal([]byte(oi.Options), &opts); err != nil {
		return nil
	}
	return opts
}

// MarshalJSON menyertakan options terdecode di payload API.
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(struct {
		Alias
		SelectedOptions []SelectedOption `json:"selected_options"`
	}{
		Alias:           Alias(oi),
		SelectedOptions: oi.DecodedOptions(),
	})
}
