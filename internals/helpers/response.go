package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	MsgInternalServerError = "Internal Server Error"
	MsgSomethingWentWrong  = "Something went wrong. Please try again later."
)

// Response adalah amplop JSON standar untuk semua endpoint riwayat.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Status     bool   `json:"status"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
	Pagination any    `json:"pagination,omitempty"`
	Error      string `json:"error,omitempty"`
}

// JsonSuccess: 200 tanpa data (mis. delete)
func JsonSuccess(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		StatusCode: fiber.StatusOK,
		Status:     true,
		Message:    message,
	})
}

// JsonList: 200 + data + pagination
func JsonList(c *fiber.Ctx, message string, data any, pagination any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		StatusCode: fiber.StatusOK,
		Status:     true,
		Data:       data,
		Message:    message,
		Pagination: pagination,
	})
}

// JsonError: error client (4xx) dengan pesan apa adanya
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if status >= fiber.StatusInternalServerError {
		return JsonInternalError(c)
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrBadRequest.Message
	}
	return c.Status(status).JSON(Response{
		StatusCode: status,
		Status:     false,
		Message:    message,
	})
}

// JsonInternalError: 500 generik, detail error tidak pernah dikirim ke client
func JsonInternalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		StatusCode: fiber.StatusInternalServerError,
		Status:     false,
		Message:    MsgInternalServerError,
		Error:      MsgSomethingWentWrong,
	})
}
