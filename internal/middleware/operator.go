package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/types"
)

// RequireOperator ensures mutating requests carry an X-Operator header naming
// the operator performing the action, and stores the trimmed name in context.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		operator := strings.TrimSpace(c.Get("X-Operator"))
		if operator == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing X-Operator header",
				Type:    "operator",
			}
		}

		c.Locals("operatorName", operator)

		return c.Next()
	}
}
