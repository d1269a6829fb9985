package models

import "time"

type ChecklistItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CoupleID    uint       `gorm:"not null;index" json:"coupleId"`
	Title       string     `gorm:"not null" json:"title"`
	Category    string     `gorm:"not null;default:''" json:"category"`
	DueDate     *string    `json:"dueDate"`
	IsCompleted bool       `gorm:"not null;default:false" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       string     `gorm:"not null;default:''" json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}
