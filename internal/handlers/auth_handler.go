package handlers

import (
	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/gofiber/fiber/v2"
)

// IssueToken signs the posted JSON object as a bearer token.
func (h *Handler) IssueToken(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.App().Config().JSONDecoder(c.Body(), &payload); err != nil || payload == nil {
		return ErrInvalidBody
	}

	token, err := h.auth.IssueToken(payload)
	if err != nil {
		return err
	}

	return c.JSON(models.TokenResponse{Token: token})
}
