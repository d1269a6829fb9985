package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AuthService struct {
	users     AuthUserRepository
	trialDays int
}

func NewAuthService(users AuthUserRepository, trialDays int) *AuthService {
	if trialDays <= 0 {
		trialDays = models.DefaultTrialDays
	}
	return &AuthService{users: users, trialDays: trialDays}
}

func (service *AuthService) Register(input RegisterInput, now time.Time) (models.User, error) {
	email, name, err := normalizeRegistration(input)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	trialEndsAt := now.AddDate(0, 0, service.trialDays)
	user := models.User{
		Email:              email,
		PasswordHash:       string(passwordHash),
		Name:               name,
		Role:               models.RoleClient,
		TrialEndsAt:        &trialEndsAt,
		SubscriptionStatus: models.SubscriptionNone,
		CreatedAt:          now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate reports ErrInvalidCredentials for unknown emails and wrong
// passwords alike.
func (service *AuthService) Authenticate(emailRaw string, password string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, password)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	return user, normalizeNotFound(err)
}

// ChangePassword replaces the password after checking the current one and
// clears any pending forced change.
func (service *AuthService) ChangePassword(userID uint, input ChangePasswordInput) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return normalizeNotFound(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(input.NewPassword); err != nil {
		return invalidField("newPassword", CodeWeak)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(user.ID, string(passwordHash), false)
}
