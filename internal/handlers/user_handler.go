package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// UpsertUser creates or merges the profile stored under the path email.
func (h *Handler) UpsertUser(c *fiber.Ctx) error {
	user, err := parseDocument(c)
	if err != nil {
		return err
	}

	res, err := h.users.Upsert(c.UserContext(), c.Params("email"), user)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GetUser returns the profile or null.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
