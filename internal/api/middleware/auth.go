package middleware

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the access token and checks route permissions for
// each of the user's roles via Casbin: any allowed role passes the request.
func AuthMiddleware(enforcer *casbin.Enforcer, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Extract Token
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing Authorization header"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// 2. Parse Token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["typ"] != "access" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token claims"})
		}

		username, _ := claims["username"].(string)
		rawRoles, _ := claims["roles"].([]interface{})
		roles := make([]string, 0, len(rawRoles))
		for _, r := range rawRoles {
			if name, ok := r.(string); ok {
				roles = append(roles, name)
			}
		}

		// Store user info in context for downstream handlers
		c.Locals("id", claims["id"])
		c.Locals("username", username)
		c.Locals("roles", roles)

		// 3. Check Permission
		// Policies are defined per role; a user passes if any of their roles
		// is allowed on this path and method
		obj := c.Path()
		act := c.Method()

		for _, role := range roles {
			permit, err := enforcer.Enforce(role, obj, act)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Permission check failed"})
			}
			if permit {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Permission denied"})
	}
}
