package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/mariage/internal/i18n"
	"github.com/terraincognita07/mariage/internal/services"
)

const (
	AuthCookieName      = "mariage_auth"
	languageCookieName  = "mariage_lang"
	contextUserKey      = "current_user"
	contextLanguageKey  = "current_language"
	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

const (
	loginAttemptLimit  = 8
	loginAttemptWindow = 15 * time.Minute
)

// WelcomeMailer sends the onboarding mail after registration.
type WelcomeMailer interface {
	SendWelcome(language string, to string, name string, trialDays int) error
}

type Handler struct {
	services      *services.Services
	i18n          *i18n.Manager
	mailer        WelcomeMailer
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	trialDays     int
	loginLimiter  *attemptLimiter
	uploadLimiter *uploadLimiter
	now           func() time.Time
}

func NewHandler(serviceSet *services.Services, i18nManager *i18n.Manager, mailer WelcomeMailer, secret string, location *time.Location, cookieSecure bool, trialDays int) (*Handler, error) {
	if serviceSet == nil {
		return nil, errors.New("services are required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		services:      serviceSet,
		i18n:          i18nManager,
		mailer:        mailer,
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		trialDays:     trialDays,
		loginLimiter:  newAttemptLimiter(),
		uploadLimiter: newUploadLimiter(uploadRatePerMinute, uploadBurst),
		now:           time.Now,
	}, nil
}

func (handler *Handler) currentTime() time.Time {
	return handler.now().In(handler.location)
}
