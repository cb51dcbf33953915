package serverutils

import (
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName carries the opaque login-session token.
const SessionCookieName = "app_session"

// SessionAuthMiddleware gates browser traffic: the cookie token must resolve
// to a live login session. User identity lands in the request locals.
func SessionAuthMiddleware(sessions store.SessionStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies(SessionCookieName)
		if token == "" {
			return apperror.Auth("authentication required")
		}

		session, found := sessions.Get(token)
		if !found {
			return apperror.Auth("session expired or invalid")
		}

		ctx.Locals("user_id", session.UserId)
		ctx.Locals("user_name", session.UserName)
		ctx.Locals("user_email", session.UserEmail)
		ctx.Locals("session_token", session.Token)
		return ctx.Next()
	}
}

// CallerLocals reads the identity set by either auth middleware.
func CallerLocals(ctx *fiber.Ctx) (userId, userName, userEmail string) {
	userId, _ = ctx.Locals("user_id").(string)
	userName, _ = ctx.Locals("user_name").(string)
	userEmail, _ = ctx.Locals("user_email").(string)
	return userId, userName, userEmail
}
