package helper

import "github.com/gofiber/fiber/v2"

// LocActor adalah key c.Locals untuk user hasil verifikasi JWT.
const LocActor = "actor"

type Actor struct {
	ID   uint64
	Role string
}

func (a *Actor) HasRole(role string) bool {
	return a != nil && a.Role == role
}

// GetActor mengembalikan nil kalau request anonim.
func GetActor(c *fiber.Ctx) *Actor {
	a, ok := c.Locals(LocActor).(*Actor)
	if !ok {
		return nil
	}
	return a
}
