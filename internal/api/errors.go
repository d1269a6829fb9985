package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) translate(c *fiber.Ctx, key string, params map[string]any) string {
	return handler.i18n.Translate(handler.currentLanguage(c), key, params)
}

func (handler *Handler) apiError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(fiber.Map{"error": handler.translate(c, key, nil)})
}

// respondServiceError is the single place service errors become HTTP
// responses. Unknown errors are logged and answered with a generic message.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	if validationErr, ok := services.IsValidationError(err); ok {
		message := handler.translate(c, "validation."+validationErr.Code, map[string]any{"field": validationErr.Field})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": message,
			"field": validationErr.Field,
		})
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return handler.apiError(c, fiber.StatusNotFound, "error.not_found")
	case errors.Is(err, services.ErrCoupleNotFound):
		return handler.apiError(c, fiber.StatusNotFound, "error.couple_not_found")
	case errors.Is(err, services.ErrCoupleExists):
		return handler.apiError(c, fiber.StatusConflict, "error.couple_exists")
	case errors.Is(err, services.ErrEmailTaken):
		return handler.apiError(c, fiber.StatusConflict, "error.email_taken")
	case errors.Is(err, services.ErrInvalidCredentials):
		return handler.apiError(c, fiber.StatusUnauthorized, "error.invalid_credentials")
	case errors.Is(err, services.ErrSubscriptionRequired):
		return handler.apiError(c, fiber.StatusForbidden, "error.subscription_required")
	}

	log.Printf("api: %s %s failed: %v", c.Method(), c.Path(), err)
	return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
}

// ErrorHandler answers errors that escape the handlers (middleware failures,
// recovered panics, oversized bodies) with the same localized body as the
// handlers themselves. Details only reach the log.
func (handler *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	if status >= fiber.StatusInternalServerError {
		log.Printf("api: %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return handler.apiError(c, status, statusMessageKey(status))
}

// CSRFError rejects a cookie session request whose csrf token is missing or stale.
func (handler *Handler) CSRFError(c *fiber.Ctx, err error) error {
	return handler.apiError(c, fiber.StatusForbidden, "error.csrf")
}

func statusMessageKey(status int) string {
	switch status {
	case fiber.StatusUnauthorized:
		return "error.unauthorized"
	case fiber.StatusForbidden:
		return "error.forbidden"
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return "error.not_found"
	case fiber.StatusRequestEntityTooLarge:
		return "error.payload_too_large"
	}
	if status >= fiber.StatusBadRequest && status < fiber.StatusInternalServerError {
		return "error.invalid_payload"
	}
	return "error.internal"
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func (handler *Handler) invalidPayload(c *fiber.Ctx) error {
	return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_payload")
}

func (handler *Handler) invalidID(c *fiber.Ctx) error {
	return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_id")
}

func deletedResponse(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}
