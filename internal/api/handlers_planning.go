package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) ListTimelineTasks(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	tasks, err := handler.services.Timeline.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateTimelineTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.TimelineTaskInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	task, err := handler.services.Timeline.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTimelineTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.TimelineTaskInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	task, err := handler.services.Timeline.Update(user.ID, taskID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTimelineTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Timeline.Delete(user.ID, taskID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}

func (handler *Handler) ListTrousseauItems(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	items, err := handler.services.Trousseau.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateTrousseauItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.TrousseauItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	item, err := handler.services.Trousseau.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateTrousseauItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.TrousseauItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	item, err := handler.services.Trousseau.Update(user.ID, itemID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteTrousseauItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Trousseau.Delete(user.ID, itemID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}

func (handler *Handler) ListWeddingDays(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	days, err := handler.services.WeddingDays.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(days)
}

func (handler *Handler) CreateWeddingDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.WeddingDayInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	day, err := handler.services.WeddingDays.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(day)
}

func (handler *Handler) UpdateWeddingDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	dayID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.WeddingDayInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	day, err := handler.services.WeddingDays.Update(user.ID, dayID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(day)
}

func (handler *Handler) DeleteWeddingDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	dayID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.WeddingDays.Delete(user.ID, dayID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}
