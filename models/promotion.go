package models

import "time"

// Discount type promo
const (
	DiscountPercent = "PERCENT"
	DiscountAmount  = "AMOUNT"
)

// Promotion berlaku untuk satu branch, atau global kalau BranchID nil.
type Promotion struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BranchID     *uint     `gorm:"index" json:"branch_id,omitempty"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	DiscountType string    `gorm:"type:varchar(10);not null" json:"discount_type"`
	Value        float64   `gorm:"type:decimal(10,2);not null" json:"value"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// ActiveAt -> promo berlaku pada [StartDate, EndDate)
func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && t.Before(p.EndDate)
}

// AppliesToBranch -> promo global (BranchID nil) berlaku di semua branch
func (p *Promotion) AppliesToBranch(branchID uint) bool {
	return p.BranchID == nil || *p.BranchID == branchID
}
