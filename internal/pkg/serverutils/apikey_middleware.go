package serverutils

import (
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// APIKeyAuthMiddleware gates external integrations via X-API-Key and
// X-User-ID headers. Only the user id is actually verified against the
// store; the key itself is a development stand-in.
//
// TODO: validate X-API-Key against per-user issued credentials before
// exposing the external API beyond trusted first-party clients.
func APIKeyAuthMiddleware(users contract.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		apiKey := ctx.Get("X-API-Key")
		userId := ctx.Get("X-User-ID")
		if apiKey == "" || userId == "" {
			return apperror.Auth("API key and User ID are required")
		}

		user, err := users.FindById(ctx.Context(), userId)
		if err != nil || user == nil {
			// Malformed and unknown ids get the same answer
			return apperror.Auth("invalid user ID")
		}

		ctx.Locals("user_id", user.Id)
		ctx.Locals("user_name", user.Name)
		ctx.Locals("user_email", user.Email)
		return ctx.Next()
	}
}
