package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) ListAttendees(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	attendees, err := handler.services.Attendees.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(attendees)
}

func (handler *Handler) AttendeeTree(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	tree, err := handler.services.Attendees.Tree(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(tree)
}

func (handler *Handler) ExportAttendees(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	rows, err := handler.services.Attendees.ExportRows(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	filename := handler.translate(c, "export.attendees_filename", nil)
	return handler.sendCSV(c, filename, services.AttendeeCSVHeaders, rows)
}

func (handler *Handler) CreateAttendee(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.AttendeeInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	attendee, err := handler.services.Attendees.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(attendee)
}

func (handler *Handler) UpdateAttendee(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	attendeeID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.AttendeeInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	attendee, err := handler.services.Attendees.Update(user.ID, attendeeID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(attendee)
}

func (handler *Handler) DeleteAttendee(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	attendeeID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Attendees.Delete(user.ID, attendeeID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}
