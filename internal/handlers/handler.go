package handlers

import (
	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/arzan03/aircnc-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Handler translates HTTP requests into service calls.
type Handler struct {
	users    services.UserService
	rooms    services.RoomService
	bookings services.BookingService
	auth     services.AuthService
	images   services.ImageService
}

// New returns a Handler. images may be nil when image uploads are disabled.
func New(
	users services.UserService,
	rooms services.RoomService,
	bookings services.BookingService,
	auth services.AuthService,
	images services.ImageService,
) *Handler {
	return &Handler{
		users:    users,
		rooms:    rooms,
		bookings: bookings,
		auth:     auth,
		images:   images,
	}
}

// Health answers the liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("AirCNC Server is running..")
}

// parseDocument decodes a JSON object body. Anything else is ErrInvalidBody.
func parseDocument(c *fiber.Ctx) (models.Document, error) {
	var doc models.Document
	if err := c.App().Config().JSONDecoder(c.Body(), &doc); err != nil || doc == nil {
		return nil, ErrInvalidBody
	}
	return doc, nil
}
