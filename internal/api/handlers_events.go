package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	events, err := handler.services.Events.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(events)
}

func (handler *Handler) GetEvent(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	eventID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}

	event, err := handler.services.Events.Get(user.ID, eventID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(event)
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.EventInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	event, err := handler.services.Events.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	eventID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.EventInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	event, err := handler.services.Events.Update(user.ID, eventID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(event)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	eventID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Events.Delete(user.ID, eventID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}
