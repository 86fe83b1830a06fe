package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"peminjaman_backend/internals/constants"
	helperAuth "peminjaman_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	Optional            bool // tanpa token: lanjut sebagai anonymous
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token
		raw := extractBearerToken(c, o.AllowCookieFallback)
		if raw == "" {
			if o.Optional {
				log.Println("[INFO] Tidak ada token, lanjut sebagai anonymous")
				return c.Next()
			}
			return fiber.NewError(fiber.StatusUnauthorized, constants.ErrUnauthorized)
		}

		// 2) Parse + verifikasi algoritma (exp dicek oleh MapClaims.Valid)
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}

		// 3) id + role → actor
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		role, _ := claims["role"].(string)

		c.Locals(helperAuth.LocActor, &helperAuth.Actor{
			ID:   userID,
			Role: strings.TrimSpace(role),
		})
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx, allowCookie bool) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	fields := strings.Fields(authz)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	if allowCookie {
		return strings.TrimSpace(c.Cookies("access_token"))
	}
	return ""
}

func extractUserID(claims jwt.MapClaims) (uint64, error) {
	idRaw, ok := claims["id"]
	if !ok {
		return 0, fmt.Errorf("no user id")
	}
	switch v := idRaw.(type) {
	case float64:
		if v < 0 || v != math.Trunc(v) {
			return 0, fmt.Errorf("invalid user id %v", v)
		}
		return uint64(v), nil
	case json.Number:
		return strconv.ParseUint(v.String(), 10, 64)
	case string:
		return strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	default:
		return 0, fmt.Errorf("invalid user id type %T", idRaw)
	}
}
