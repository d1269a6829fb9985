package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SideGroom  = "marie"
	SideBride  = "mariee"
	SideShared = "commun"
)

type Attendee struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"userId"`
	FirstName    string         `gorm:"not null" json:"firstName"`
	LastName     string         `gorm:"not null;default:''" json:"lastName"`
	Email        string         `gorm:"not null;default:''" json:"email"`
	Phone        string         `gorm:"not null;default:''" json:"phone"`
	Category     string         `gorm:"not null;default:''" json:"category"`
	Side         string         `gorm:"not null;default:commun" json:"side"`
	Confirmed    bool           `gorm:"not null;default:false" json:"confirmed"`
	PlusOne      bool           `gorm:"not null;default:false" json:"plusOne"`
	TableNumber  *int           `json:"tableNumber"`
	Relationship string         `gorm:"not null;default:''" json:"relationship"`
	ParentID     *uint          `gorm:"index" json:"parentId"`
	Metadata     datatypes.JSON `json:"metadata"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func IsKnownSide(side string) bool {
	switch side {
	case SideGroom, SideBride, SideShared:
		return true
	default:
		return false
	}
}
