package models

import "time"

type BudgetItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CoupleID        uint      `gorm:"not null;index" json:"coupleId"`
	Category        string    `gorm:"not null" json:"category"`
	Label           string    `gorm:"not null" json:"label"`
	EstimatedAmount float64   `gorm:"not null;default:0" json:"estimatedAmount"`
	ActualAmount    float64   `gorm:"not null;default:0" json:"actualAmount"`
	IsPaid          bool      `gorm:"not null;default:false" json:"isPaid"`
	Notes           string    `gorm:"not null;default:''" json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BudgetTotal holds the overall budget figure a user plans to spend.
type BudgetTotal struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}
