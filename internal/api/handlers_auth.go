package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	requested := c.Params("lang")
	if !handler.i18n.IsSupported(requested) {
		return handler.apiError(c, fiber.StatusBadRequest, "error.unsupported_language")
	}

	language := handler.i18n.NormalizeLanguage(requested)
	handler.setLanguageCookie(c, language)
	return c.JSON(fiber.Map{"language": language})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return handler.apiError(c, fiber.StatusNotFound, "error.not_found")
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := services.RegisterInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	user, err := handler.services.Auth.Register(input, handler.currentTime())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.setAuthCookie(c, token)

	if handler.mailer != nil {
		go handler.sendWelcome(handler.currentLanguage(c), user)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

func (handler *Handler) sendWelcome(language string, user models.User) {
	if err := handler.mailer.SendWelcome(language, user.Email, user.Name, handler.trialDays); err != nil {
		log.Printf("welcome mail to user %d failed: %v", user.ID, err)
	}
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.currentTime()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "error.too_many_attempts")
	}

	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.invalidPayload(c)
	}

	user, err := handler.services.Auth.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		}
		return handler.respondServiceError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{"user": user, "token": token})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(fiber.Map{
		"user":               user,
		"mustChangePassword": user.MustChangePassword,
		"subscription":       services.DescribeSubscription(*user, handler.currentTime()),
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.ChangePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}
	if err := handler.services.Auth.ChangePassword(user.ID, input); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SubscriptionStatus mirrors the server-side feature policy for clients.
func (handler *Handler) SubscriptionStatus(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(services.DescribeSubscription(*user, handler.currentTime()))
}

func (handler *Handler) DashboardStats(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	stats, err := handler.services.Dashboard.Stats(*user, handler.currentTime())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(stats)
}

func queryText(c *fiber.Ctx, key string) string {
	return strings.TrimSpace(c.Query(key))
}
