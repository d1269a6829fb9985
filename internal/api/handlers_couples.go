package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) GetCouple(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	couple, err := handler.services.Couples.ForMember(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(couple)
}

func (handler *Handler) CreateCouple(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.CreateCoupleInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	couple, err := handler.services.Couples.Create(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(couple)
}

func (handler *Handler) UpdateCouple(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.UpdateCoupleInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	couple, err := handler.services.Couples.Update(user.ID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(couple)
}

func (handler *Handler) PlannerCouples(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	couples, err := handler.services.Couples.ListForPlanner(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(couples)
}

func (handler *Handler) AdminListCouples(c *fiber.Ctx) error {
	page, err := handler.services.Couples.ListPage(services.CoupleQuery{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", services.DefaultCouplePageLimit),
		Search: queryText(c, "search"),
		Status: queryText(c, "status"),
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(page)
}

func (handler *Handler) AdminUpdateCouple(c *fiber.Ctx) error {
	coupleID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.AdminCoupleInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	couple, err := handler.services.Couples.AdminUpdate(coupleID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(couple)
}

func (handler *Handler) AdminDeleteCouple(c *fiber.Ctx) error {
	coupleID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	if err := handler.services.Couples.Delete(coupleID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	users, err := handler.services.Users.List()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(users)
}

func (handler *Handler) AdminUpdateSubscription(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.SubscriptionInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	user, err := handler.services.Users.UpdateSubscription(userID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(user)
}
