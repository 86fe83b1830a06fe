package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic; ErrorHandler app yang merender 500 generik.
// Stack trace dicatat bersama request id supaya bisa dicocokkan dengan access log.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: logPanic,
	})
}

func logPanic(c *fiber.Ctx, e any) {
	reqID, _ := c.Locals("reqid").(string)
	log.Printf("[PANIC] reqid=%s %s %s: %v\n%s", reqID, c.Method(), c.Path(), e, debug.Stack())
}
