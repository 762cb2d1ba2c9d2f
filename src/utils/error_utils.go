// error_utils.go
package utils

import (
	"errors"

	"mergington-activities/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: message,
	})
}

// ErrorHandler แปลง error ที่หลุดออกมาจาก handler ให้เป็น {"detail": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	}
	return HandleError(c, status, message)
}
