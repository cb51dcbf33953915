package controller

import (
	"agri-assistant-be/internal/pkg/serverutils"
	"agri-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFieldDataController interface {
	RegisterRoutes(r fiber.Router, sessionAuth, apiKeyAuth fiber.Handler)
	UserData(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type fieldDataController struct {
	service service.IFieldDataService
}

func NewFieldDataController(service service.IFieldDataService) IFieldDataController {
	return &fieldDataController{service: service}
}

func (c *fieldDataController) RegisterRoutes(r fiber.Router, sessionAuth, apiKeyAuth fiber.Handler) {
	r.Get("/user-data", sessionAuth, c.UserData)
	r.Get("/dashboard", sessionAuth, c.Dashboard)
	r.Get("/external/user-data", apiKeyAuth, c.UserData)
}

func (c *fieldDataController) UserData(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	payload, err := c.service.UserData(ctx.Context(), userId)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.SendString(payload)
}

func (c *fieldDataController) Dashboard(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	res, err := c.service.Dashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
