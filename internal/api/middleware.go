package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/services"
)

// AuthRequired runs before any payload handling so anonymous requests
// always get 401.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if errors.Is(err, errUnauthenticated) {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return handler.apiError(c, fiber.StatusForbidden, "error.forbidden")
	}
}

// FeatureGate evaluates the trial policy against the user loaded for this
// request, never against anything the client reports.
func (handler *Handler) FeatureGate(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
		}
		if err := services.CheckFeature(*user, feature, handler.currentTime()); err != nil {
			return handler.respondServiceError(c, err)
		}
		return c.Next()
	}
}

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	if cookieLanguage != language {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}

func (handler *Handler) currentLanguage(c *fiber.Ctx) string {
	if language, ok := c.Locals(contextLanguageKey).(string); ok && language != "" {
		return language
	}
	return handler.i18n.DefaultLanguage()
}
