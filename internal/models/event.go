package models

import "time"

const (
	EventTypeCeremony   = "ceremony"
	EventTypeCivil      = "civil"
	EventTypeReception  = "reception"
	EventTypeRehearsal  = "rehearsal"
	EventTypeEngagement = "engagement"
	EventTypeParty      = "party"
	EventTypeOther      = "other"
)

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CoupleID    uint      `gorm:"not null;index" json:"coupleId"`
	Title       string    `gorm:"not null" json:"title"`
	Type        string    `gorm:"not null;default:other" json:"type"`
	Date        *string   `json:"date"`
	Time        string    `gorm:"not null;default:''" json:"time"`
	Location    string    `gorm:"not null;default:''" json:"location"`
	Description string    `gorm:"not null;default:''" json:"description"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsKnownEventType(eventType string) bool {
	switch eventType {
	case EventTypeCeremony, EventTypeCivil, EventTypeReception, EventTypeRehearsal,
		EventTypeEngagement, EventTypeParty, EventTypeOther:
		return true
	default:
		return false
	}
}
