package claims

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The caller is always identified from the verified JWT in the request
// context, never from client-supplied body or query fields.

// GetUserID extracts the caller's UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// GetRole extracts the role claim. The role in the token is advisory (used
// for cheap route gating); authorization decisions re-resolve the user row.
func GetRole(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := mapClaims["role"].(string)
	return role
}
