package models

import "time"

const (
	CoupleStatusPlanning  = "planning"
	CoupleStatusActive    = "active"
	CoupleStatusCompleted = "completed"
	CoupleStatusArchived  = "archived"
)

type Couple struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BrideID     *uint     `gorm:"index" json:"brideId"`
	GroomID     *uint     `gorm:"index" json:"groomId"`
	PlannerID   *uint     `gorm:"index" json:"plannerId"`
	WeddingDate *string   `json:"weddingDate"`
	Status      string    `gorm:"not null;default:planning" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Bride   *User `gorm:"foreignKey:BrideID" json:"bride,omitempty"`
	Groom   *User `gorm:"foreignKey:GroomID" json:"groom,omitempty"`
	Planner *User `gorm:"foreignKey:PlannerID" json:"planner,omitempty"`
}

func (couple Couple) HasMember(userID uint) bool {
	if couple.BrideID != nil && *couple.BrideID == userID {
		return true
	}
	return couple.GroomID != nil && *couple.GroomID == userID
}

func IsKnownCoupleStatus(status string) bool {
	switch status {
	case CoupleStatusPlanning, CoupleStatusActive, CoupleStatusCompleted, CoupleStatusArchived:
		return true
	default:
		return false
	}
}
