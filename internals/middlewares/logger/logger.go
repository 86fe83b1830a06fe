package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"peminjaman_backend/internals/configs"
)

const (
	accessTimeFormat = "2006-01-02 15:04:05"
	accessFormat     = "[${time}] ${locals:reqid} ${ip} - ${method} ${path}?${queryParams} - ${status} - ${latency} - ${bytesSent}B\n"
)

// LoggerMiddleware mencatat access log; request ke /health tidak dicatat.
func LoggerMiddleware() fiber.Handler {
	tz := configs.LogTimeZone
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	return logger.New(logger.Config{
		Next:       skipHealth,
		TimeFormat: accessTimeFormat,
		TimeZone:   tz,
		Format:     accessFormat,
	})
}

func skipHealth(c *fiber.Ctx) bool {
	return c.Path() == "/health"
}
