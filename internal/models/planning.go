package models

import "time"

type TimelineTask struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Category    string    `gorm:"not null" json:"category"`
	Phase       string    `gorm:"not null" json:"phase"`
	Description string    `gorm:"not null;default:''" json:"description"`
	DueDate     *string   `json:"dueDate"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TrousseauItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null" json:"category"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	IsPurchased bool      `gorm:"not null;default:false" json:"isPurchased"`
	Notes       string    `gorm:"not null;default:''" json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type WeddingDay struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Date        string    `gorm:"not null" json:"date"`
	Location    string    `gorm:"not null;default:''" json:"location"`
	Description string    `gorm:"not null;default:''" json:"description"`
	IsMainDay   bool      `gorm:"not null;default:false" json:"isMainDay"`
	Order       int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
