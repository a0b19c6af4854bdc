package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"jobportal-backend/internal/services"
)

// errorStatus maps service errors onto HTTP status codes. Anything outside
// the known taxonomy is a server error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidJobID):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrJobNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the error envelope. Server errors are logged with context;
// the error message is echoed to the client in every case.
func fail(c *fiber.Ctx, err error, logContext string) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", logContext, err)
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "message": err.Error()})
}

// pageJSON writes the shared pagination envelope.
func pageJSON(c *fiber.Ctx, page services.JobPage) error {
	return c.JSON(fiber.Map{
		"success": true,
		"count":   page.Count,
		"total":   page.Total,
		"page":    page.Page,
		"pages":   page.Pages,
		"data":    page.Data,
	})
}
