package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"peminjaman_backend/internals/constants"
	helper "peminjaman_backend/internals/helpers"
	helperAuth "peminjaman_backend/internals/helpers/auth"
)

// OnlyRoles memungkinkan akses jika actor memiliki salah satu dari role yang diizinkan.
// Harus dipasang setelah AuthJWT.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	if customMessage == "" {
		customMessage = constants.ErrNotAuthorized
	}
	return func(c *fiber.Ctx) error {
		actor := helperAuth.GetActor(c)
		if actor == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrUnauthorized)
		}

		for _, allowed := range roles {
			if actor.Role == allowed {
				return c.Next()
			}
		}

		log.Printf("[INFO] Role %q ditolak untuk %s %s", actor.Role, c.Method(), c.Path())
		return helper.JsonError(c, fiber.StatusForbidden, customMessage)
	}
}
