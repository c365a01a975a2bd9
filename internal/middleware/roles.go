package middleware

import (
	"github.com/corems/corems-backend/internal/claims"
	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoleRequired gates a route to the given roles. The role is re-read from the
// users table rather than trusted from the token, so demotions take effect
// before the token expires.
func RoleRequired(db *gorm.DB, roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		userID, err := claims.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !allowed[user.Role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient role",
			})
		}
		return c.Next()
	}
}

// SuperadminRequired gates the category and user administration surface.
func SuperadminRequired(db *gorm.DB) fiber.Handler {
	return RoleRequired(db, models.RoleSuperadmin)
}
