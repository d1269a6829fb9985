package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
)

type UserAdminRepository interface {
	List() ([]models.User, error)
	FindByID(userID uint) (models.User, error)
	UpdateSubscription(userID uint, status string, plan string, endsAt *time.Time, trialEndsAt *time.Time) error
}

type SubscriptionInput struct {
	Status      string     `json:"status"`
	Plan        string     `json:"plan"`
	EndsAt      *time.Time `json:"endsAt"`
	TrialEndsAt *time.Time `json:"trialEndsAt"`
}

type UserAdminService struct {
	users UserAdminRepository
}

func NewUserAdminService(users UserAdminRepository) *UserAdminService {
	return &UserAdminService{users: users}
}

func (service *UserAdminService) List() ([]models.User, error) {
	return service.users.List()
}

func (service *UserAdminService) UpdateSubscription(userID uint, input SubscriptionInput) (models.User, error) {
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if !models.IsKnownSubscriptionStatus(status) {
		return models.User{}, invalidField("status", CodeInvalid)
	}
	if status == models.SubscriptionActive && input.EndsAt == nil {
		return models.User{}, invalidField("endsAt", CodeRequired)
	}

	if err := service.users.UpdateSubscription(userID, status, strings.TrimSpace(input.Plan), input.EndsAt, input.TrialEndsAt); err != nil {
		return models.User{}, normalizeNotFound(err)
	}
	user, err := service.users.FindByID(userID)
	return user, normalizeNotFound(err)
}
