package handlers

import (
	"github.com/arzan03/aircnc-server/internal/logger"
	"github.com/arzan03/aircnc-server/internal/middleware"
	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateRoom(c *fiber.Ctx) error {
	room, err := parseDocument(c)
	if err != nil {
		return err
	}

	res, err := h.rooms.Create(c.UserContext(), room)
	if err != nil {
		return err
	}

	logger.FromContext(c.UserContext()).Info().
		Interface("room_id", res.InsertedID).
		Str("host", models.StringAt(room, models.FieldHost, models.FieldEmail)).
		Msg("room listed")

	return c.JSON(res)
}

// GetRoom returns the room or null.
func (h *Handler) GetRoom(c *fiber.Ctx) error {
	room, err := h.rooms.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(room)
}

// ListHostRooms returns the rooms of the authenticated host. Requires the
// auth middleware.
func (h *Handler) ListHostRooms(c *fiber.Ctx) error {
	email := c.Params("email")
	if middleware.EmailFromCtx(c) != email {
		return c.Status(fiber.StatusForbidden).JSON(models.NewErrorResponse("Forbidden Access"))
	}

	rooms, err := h.rooms.ListByHost(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(rooms)
}

func (h *Handler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.rooms.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(rooms)
}

func (h *Handler) DeleteRoom(c *fiber.Ctx) error {
	res, err := h.rooms.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetRoomStatus sets the booked flag from {"status": <bool>}.
func (h *Handler) SetRoomStatus(c *fiber.Ctx) error {
	var body models.RoomStatus
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil || body.Status == nil {
		return ErrInvalidBody
	}

	res, err := h.rooms.SetBooked(c.UserContext(), c.Params("id"), *body.Status)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
