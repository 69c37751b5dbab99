// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"log"
	"strings"

	"moniepaddy/internal/config"
	"moniepaddy/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth validates the Bearer JWT and stores the user claims in the request
// context. Every wallet route runs behind it; only the catalog reads are
// public.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "No token provided")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, "Invalid authorization format")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.GetEnv("JWT_SECRET", "moniepaddy")), nil
		})
		if err != nil || !token.Valid {
			log.Printf("Token validation error: %v", err)
			return unauthorized(c, "Invalid token")
		}

		claims, ok := token.Claims.(*models.UserClaims)
		if !ok || claims.UserID == 0 {
			return unauthorized(c, "Invalid claims")
		}

		c.Locals("claims", claims)
		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "No token provided",
		"error":   detail,
	})
}
