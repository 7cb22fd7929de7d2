package handlers

import (
	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	booking, err := parseDocument(c)
	if err != nil {
		return err
	}

	res, err := h.bookings.Create(c.UserContext(), booking)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// ListGuestBookings answers [] without querying when ?email is missing.
func (h *Handler) ListGuestBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.Document{})
	}

	bookings, err := h.bookings.ListByGuest(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

// ListHostBookings answers [] without querying when ?email is missing.
func (h *Handler) ListHostBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.Document{})
	}

	bookings, err := h.bookings.ListByHost(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	res, err := h.bookings.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}
