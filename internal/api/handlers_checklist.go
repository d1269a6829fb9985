package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) ListChecklist(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	items, err := handler.services.Checklist.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateChecklistItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.ChecklistInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	item, err := handler.services.Checklist.Create(user.ID, input, handler.currentTime())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateChecklistItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.ChecklistInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	item, err := handler.services.Checklist.Update(user.ID, itemID, input, handler.currentTime())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteChecklistItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Checklist.Delete(user.ID, itemID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}
