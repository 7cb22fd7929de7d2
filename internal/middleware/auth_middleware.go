package middleware

import (
	"strings"

	"github.com/arzan03/aircnc-server/internal/logger"
	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/arzan03/aircnc-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys set by the auth middleware.
const (
	LocalsClaims = "claims"
	LocalsEmail  = "email"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware validates the bearer token and stores its claims for the
// next handlers. It never touches the database.
func NewAuthMiddleware(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if tokenString == "" {
			return unauthorized(c)
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			logger.FromContext(c.UserContext()).Debug().Err(err).Msg("rejected bearer token")
			return unauthorized(c)
		}

		c.Locals(LocalsClaims, claims)
		if email, ok := claims["email"].(string); ok {
			c.Locals(LocalsEmail, email)
		}

		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims, or nil outside the auth middleware.
func ClaimsFromCtx(c *fiber.Ctx) jwt.MapClaims {
	claims, _ := c.Locals(LocalsClaims).(jwt.MapClaims)
	return claims
}

// EmailFromCtx returns the email claim of the verified token, or "".
func EmailFromCtx(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalsEmail).(string)
	return email
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.NewErrorResponse("Unauthorized Access"))
}
