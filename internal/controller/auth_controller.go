package controller

import (
	"time"

	"agri-assistant-be/internal/dto"
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/pkg/serverutils"
	"agri-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, sessionAuth fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	service    service.IAuthService
	sessionTTL time.Duration
}

func NewAuthController(service service.IAuthService, sessionTTL time.Duration) IAuthController {
	return &authController{service: service, sessionTTL: sessionTTL}
}

func (c *authController) RegisterRoutes(r fiber.Router, sessionAuth fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/me", sessionAuth, c.Me)
	h.Put("/password", sessionAuth, c.ChangePassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	user, session, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.setSessionCookie(ctx, session.Token)
	return ctx.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		User:    toUserResponse(user),
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	user, session, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.setSessionCookie(ctx, session.Token)
	return ctx.JSON(dto.AuthResponse{
		Success: true,
		User:    toUserResponse(user),
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	token := ctx.Cookies(serverutils.SessionCookieName)
	if token != "" {
		if err := c.service.Logout(ctx.Context(), token); err != nil {
			return err
		}
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return ctx.JSON(fiber.Map{"success": true, "message": "logged out"})
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	user, err := c.service.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.AuthResponse{
		Success: true,
		User:    toUserResponse(user),
	})
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	userId, _, _ := serverutils.CallerLocals(ctx)
	if err := c.service.ChangePassword(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "password updated"})
}

func (c *authController) setSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(c.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
	}
}
