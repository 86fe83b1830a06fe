package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"peminjaman_backend/internals/features/peminjaman/history/dto"
	"peminjaman_backend/internals/features/peminjaman/history/service"
	helper "peminjaman_backend/internals/helpers"
	helperAuth "peminjaman_backend/internals/helpers/auth"
)

type HistoryController struct {
	Service *service.HistoryService
}

func NewHistoryController(svc *service.HistoryService) *HistoryController {
	return &HistoryController{Service: svc}
}

// GET /history/student/:nim → array polos, tanpa amplop
func (ctrl *HistoryController) GetByStudent(c *fiber.Ctx) error {
	items, err := ctrl.Service.GetHistoryByStudent(c.UserContext(), helperAuth.GetActor(c), c.Params("nim"))
	if err != nil {
		return ctrl.fail(c, "History By Student Failed", err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// GET /history?page=&page_size=
func (ctrl *HistoryController) List(c *fiber.Ctx) error {
	q, err := dto.ParseListHistoryQuery(
		queryOrDefault(c, "page", dto.DefaultPage),
		queryOrDefault(c, "page_size", dto.DefaultPageSize),
	)
	if err != nil {
		return ctrl.fail(c, "History Fetch Failed", err)
	}

	page, err := ctrl.Service.ListHistory(c.UserContext(), helperAuth.GetActor(c), q)
	if err != nil {
		return ctrl.fail(c, "History Fetch Failed", err)
	}
	return helper.JsonList(c, "Success Fetching History", page.Items, page.Pagination)
}

// queryOrDefault: default hanya untuk parameter yang tidak dikirim sama sekali.
// "?page=" tetap diteruskan sebagai string kosong supaya ditolak validasi.
func queryOrDefault(c *fiber.Ctx, key, def string) string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return def
	}
	return string(args.Peek(key))
}

// DELETE /history/:id
func (ctrl *HistoryController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteHistory(c.UserContext(), helperAuth.GetActor(c), c.Params("id")); err != nil {
		return ctrl.fail(c, "Delete History Failed", err)
	}
	return helper.JsonSuccess(c, "History deleted successfully.")
}

// fail memetakan error service ke amplop; selain error yang dikenal jadi 500 generik.
func (ctrl *HistoryController) fail(c *fiber.Ctx, op string, err error) error {
	var pe *dto.PagingError
	switch {
	case errors.As(err, &pe):
		log.Printf("[INFO] %s: %v", op, pe)
		return helper.JsonError(c, fiber.StatusBadRequest, pe.Message)
	case errors.Is(err, service.ErrHistoryNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrHistoryNotFound.Error())
	case errors.Is(err, service.ErrForbidden):
		return helper.JsonError(c, fiber.StatusForbidden, service.ErrForbidden.Error())
	default:
		log.Printf("[ERROR] %s: %v", op, err)
		return helper.JsonInternalError(c)
	}
}
