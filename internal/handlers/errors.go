package handlers

import (
	"errors"

	"github.com/arzan03/aircnc-server/internal/logger"
	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/arzan03/aircnc-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ErrInvalidBody is returned when a request body cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	ErrInvalidBody:           {fiber.StatusBadRequest, "Invalid request body"},
	services.ErrInvalidID:    {fiber.StatusBadRequest, "Invalid id"},
	services.ErrInvalidImage: {fiber.StatusBadRequest, "Invalid image"},
}

func replyFromError(err error) (errorReply, bool) {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply, true
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return errorReply{fe.Code, fe.Message}, true
	}

	return errorReply{fiber.StatusInternalServerError, "Internal Server Error"}, false
}

// ErrorHandler writes every error returned by a handler as an ErrorResponse.
// Unknown errors are logged and hidden behind a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	reply, known := replyFromError(err)
	if !known {
		logger.FromContext(c.UserContext()).Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
	}

	return c.Status(reply.status).JSON(models.NewErrorResponse(reply.message))
}
