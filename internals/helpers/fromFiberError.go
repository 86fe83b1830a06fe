package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler dipasang di fiber.Config. *fiber.Error (dari middleware auth, 404 routing, dsb.)
// dirender dengan amplop standar; error lain jadi 500 generik.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] Unhandled error %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonInternalError(c)
}
