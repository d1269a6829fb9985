package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

type budgetTotalInput struct {
	Amount *float64 `json:"amount"`
}

func (handler *Handler) ListBudgetItems(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	items, err := handler.services.Budget.ListItems(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateBudgetItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.BudgetItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	item, err := handler.services.Budget.CreateItem(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateBudgetItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.BudgetItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	item, err := handler.services.Budget.UpdateItem(user.ID, itemID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteBudgetItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Budget.DeleteItem(user.ID, itemID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}

func (handler *Handler) GetBudgetTotal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	total, err := handler.services.Budget.Total(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(total)
}

func (handler *Handler) SetBudgetTotal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := budgetTotalInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	total, err := handler.services.Budget.SetTotal(user.ID, input.Amount, handler.currentTime())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(total)
}

func (handler *Handler) BudgetSummary(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	summary, err := handler.services.Budget.Summary(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportBudget(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	rows, err := handler.services.Budget.ExportRows(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	filename := handler.translate(c, "export.budget_filename", nil)
	return handler.sendCSV(c, filename, services.BudgetCSVHeaders, rows)
}
