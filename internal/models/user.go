package models

import "time"

const (
	RoleClient  = "CLIENT"
	RolePlanner = "PLANNER"
	RoleAdmin   = "ADMIN"
)

const (
	SubscriptionNone     = "none"
	SubscriptionTrialing = "trialing"
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
	SubscriptionPastDue  = "past_due"
)

const DefaultTrialDays = 15

type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	Name               string     `gorm:"not null;default:''" json:"name"`
	Role               string     `gorm:"not null;default:CLIENT" json:"role"`
	MustChangePassword bool       `gorm:"not null;default:false" json:"-"`
	TrialEndsAt        *time.Time `json:"trialEndsAt"`
	SubscriptionStatus string     `gorm:"not null;default:none" json:"subscriptionStatus"`
	SubscriptionPlan   string     `gorm:"not null;default:''" json:"subscriptionPlan"`
	SubscriptionEndsAt *time.Time `json:"subscriptionEndsAt"`
	CreatedAt          time.Time  `gorm:"not null" json:"createdAt"`
}

func IsKnownRole(role string) bool {
	switch role {
	case RoleClient, RolePlanner, RoleAdmin:
		return true
	default:
		return false
	}
}

func IsKnownSubscriptionStatus(status string) bool {
	switch status {
	case SubscriptionNone, SubscriptionTrialing, SubscriptionActive, SubscriptionCanceled, SubscriptionPastDue:
		return true
	default:
		return false
	}
}
