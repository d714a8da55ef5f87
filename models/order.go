package models

import "time"

// Status order mengikuti alur: DRAFT -> PENDING -> PREPARING -> DELIVERY -> COMPLETED.
// CANCELED bisa dicapai dari PENDING/PREPARING/DELIVERY. DRAFT adalah cart.
const (
	OrderStatusDraft     = "DRAFT"
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusDelivery  = "DELIVERY"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCanceled  = "CANCELED"
)

// Order type
const (
	OrderTypeDineIn   = "DINE_IN"
	OrderTypeDelivery = "DELIVERY"
)

// Payment methods yang dikenal saat checkout
const (
	PaymentCash     = "CASH"
	PaymentTransfer = "TRANSFER"
	PaymentEWallet  = "EWALLET"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"-"`
	BranchID        uint        `gorm:"not null;index" json:"branch_id"`
	Branch          Branch      `gorm:"foreignKey:BranchID" json:"-"`
	Status          string      `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	OrderType       string      `gorm:"type:varchar(20);not null;default:'DINE_IN'" json:"order_type"`
	TotalPrice      float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_price"`
	DiscountAmount  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_amount"`
	FinalPrice      float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"final_price"`
	PromoID         *uint       `gorm:"index" json:"promo_id,omitempty"`
	Promo           *Promotion  `gorm:"foreignKey:PromoID" json:"promo,omitempty"`
	PaymentMethod   string      `gorm:"type:varchar(20)" json:"payment_method"`
	DeliveryAddress string      `gorm:"type:text" json:"delivery_address"`
	ScheduledAt     *time.Time  `json:"scheduled_at,omitempty"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

// IsEditable -> cart hanya boleh dimutasi selama masih DRAFT
func (o *Order) IsEditable() bool {
	return o.Status == OrderStatusDraft
}
