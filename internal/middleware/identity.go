package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nolimit0410/fitlog-backend/internal/dto"
	"github.com/nolimit0410/fitlog-backend/internal/identity"
	"github.com/nolimit0410/fitlog-backend/internal/services"
)

// RequireIdentity resolves the token's subject back to a stored user. A
// syntactically valid token whose account has since disappeared is rejected
// the same way as a missing token.
func RequireIdentity(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := identity.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if _, err := authService.CurrentUser(userID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		return c.Next()
	}
}
