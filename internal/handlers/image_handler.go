package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// UploadImage stores the multipart "image" file and returns its key and URL.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	img, err := h.images.Upload(c.UserContext(), fh.Filename, fh.Header.Get(fiber.HeaderContentType), f, fh.Size)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(img)
}
