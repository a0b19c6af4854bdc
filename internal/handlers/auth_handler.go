package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jobportal-backend/internal/services"
)

var authService *services.AuthService

// InitAuthHandler wires the auth service into the package handlers.
func InitAuthHandler(svc *services.AuthService) {
	authService = svc
}

func RegisterHandler(c *fiber.Ctx) error {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	data, err := authService.Register(c.Context(), request.Name, request.Email, request.Password, request.Role)
	if err != nil {
		return fail(c, err, "Register error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    data,
	})
}

func LoginHandler(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	data, err := authService.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		return fail(c, err, "Login error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    data,
	})
}
