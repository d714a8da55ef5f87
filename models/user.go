package models

import "time"

type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(255); not null" json:"name"`
	Email     string  `gorm:"type:varchar(255); unique;not null" json:"email"`
	Password  string  `gorm:"type:varchar(255); not null" json:"-"`
	Role      string  `gorm:"type:varchar(20); not null;default:'customer'" json:"role"`
	BranchID  *uint   `gorm:"index" json:"branch_id,omitempty"`
	Branch    *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
