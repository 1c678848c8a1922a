package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const actorKey = "actor"

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

func GetClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// DisplayName reads the name the identity provider put into the token, if any.
func DisplayName(claims jwt.MapClaims) string {
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		for _, key := range []string{"name", "full_name"} {
			if name, ok := meta[key].(string); ok && name != "" {
				return name
			}
		}
	}
	if name, ok := claims["name"].(string); ok {
		return name
	}
	return ""
}

func SetActor(c *fiber.Ctx, a Actor) {
	c.Locals(actorKey, a)
}

// GetActor returns the actor stored by the actor middleware.
func GetActor(c *fiber.Ctx) (Actor, bool) {
	a, ok := c.Locals(actorKey).(Actor)
	return a, ok
}
