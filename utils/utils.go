package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes the standard error body: a human readable message plus optional details.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	return c.Status(status).JSON(response)
}
