package serverutils

import (
	"agri-assistant-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseBody decodes the JSON request body, reporting malformed input as a
// validation failure rather than an internal error.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("invalid request body")
	}
	return nil
}

// ValidateStruct runs the dto's validate tags and reports the first failure
// as a validation error the boundary maps to a 400.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0]
			return apperror.Validation(field.Field() + " failed validation on '" + field.Tag() + "'")
		}
		return apperror.Validation("invalid request body")
	}
	return nil
}
