package route

import (
	"github.com/gofiber/fiber/v2"

	"peminjaman_backend/internals/constants"
	historyController "peminjaman_backend/internals/features/peminjaman/history/controller"
	authMiddleware "peminjaman_backend/internals/middlewares/auth"
)

// HistoryPublicRoutes: JWT opsional, tanpa token tidak ada filter user
func HistoryPublicRoutes(api fiber.Router, ctrl *historyController.HistoryController) {
	history := api.Group("/history")
	history.Get("/student/:nim", ctrl.GetByStudent)
}

func HistoryUserRoutes(api fiber.Router, ctrl *historyController.HistoryController) {
	history := api.Group("/history")
	history.Get("/", ctrl.List)
	history.Get("/student/:nim", ctrl.GetByStudent)
}

func HistoryAdminRoutes(api fiber.Router, ctrl *historyController.HistoryController) {
	history := api.Group("/history",
		authMiddleware.OnlyRoles(constants.ErrNotAuthorized, constants.AdminOnly...),
	)
	history.Delete("/:id", ctrl.Delete)
}
