// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"peminjaman_backend/internals/configs"
	database "peminjaman_backend/internals/databases"
	historyController "peminjaman_backend/internals/features/peminjaman/history/controller"
	historyRepository "peminjaman_backend/internals/features/peminjaman/history/repository"
	historyRoute "peminjaman_backend/internals/features/peminjaman/history/route"
	historyService "peminjaman_backend/internals/features/peminjaman/history/service"
	authMiddleware "peminjaman_backend/internals/middlewares/auth"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	startTime = time.Now()

	BaseRoutes(app, database.Ping)

	svc := historyService.NewHistoryService(
		historyRepository.NewHistoryRepository(db),
		historyService.NewHistoryCache(rdb, configs.HistoryCacheTTL),
	)
	MountHistoryRoutes(app, historyController.NewHistoryController(svc), configs.JWTSecret)
}

// MountHistoryRoutes memasang grup public / user / admin untuk fitur riwayat.
func MountHistoryRoutes(app *fiber.App, ctrl *historyController.HistoryController, jwtSecret string) {
	// PUBLIC → JWT opsional
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              jwtSecret,
			Optional:            true,
			AllowCookieFallback: true,
		}),
	)

	// PRIVATE (USER) → JWT wajib
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              jwtSecret,
			AllowCookieFallback: true,
		}),
	)

	// ADMIN → JWT wajib, role dicek di route fitur
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              jwtSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting History routes...")
	historyRoute.HistoryPublicRoutes(public, ctrl)
	historyRoute.HistoryUserRoutes(private, ctrl)
	historyRoute.HistoryAdminRoutes(admin, ctrl)
}
