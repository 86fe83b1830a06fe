package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"peminjaman_backend/internals/constants"
	"peminjaman_backend/internals/features/peminjaman/history/dto"
	"peminjaman_backend/internals/features/peminjaman/history/repository"
	helperAuth "peminjaman_backend/internals/helpers/auth"
)

var (
	ErrForbidden       = errors.New(constants.ErrNotAuthorized)
	ErrHistoryNotFound = errors.New("History not found.")
	// Listing non-admin butuh actor untuk filter user_id.
	ErrActorRequired = errors.New("history: actor required for non-admin listing")
)

type HistoryService struct {
	repo  repository.HistoryRepository
	cache *HistoryCache
}

// NewHistoryService: cache boleh nil.
func NewHistoryService(repo repository.HistoryRepository, cache *HistoryCache) *HistoryService {
	return &HistoryService{repo: repo, cache: cache}
}

// GetHistoryByStudent mengambil riwayat dikembalikan milik satu NIM.
// Student hanya melihat baris yang dia buat sendiri; tanpa actor tidak ada filter tambahan.
func (s *HistoryService) GetHistoryByStudent(ctx context.Context, actor *helperAuth.Actor, nim string) ([]dto.HistoryItem, error) {
	log.Printf("[INFO] Entering GetHistoryByStudent with NIM: %s", nim)

	var userID *uint64
	if actor.HasRole(constants.RoleStudent) {
		log.Printf("[INFO] User role is student, filtering by user id %d", actor.ID)
		id := actor.ID
		userID = &id
	}

	// generasi diambil sebelum query DB; delete yang terjadi di tengah jalan
	// menaikkan generasi sehingga hasil baca ini tidak pernah terlihat lagi.
	gen, cacheable := s.cache.Generation(ctx, nim)
	if cacheable {
		if items, ok := s.cache.GetStudent(ctx, nim, gen, userID); ok {
			log.Printf("[INFO] Cache hit for NIM %s: %d records", nim, len(items))
			return items, nil
		}
	}

	rows, err := s.repo.FindReturnedByNIM(ctx, nim, userID)
	if err != nil {
		return nil, fmt.Errorf("find history by nim: %w", err)
	}
	if len(rows) == 0 {
		log.Printf("[INFO] No history peminjaman found for NIM %s", nim)
	}

	items := dto.FromModels(rows)
	if cacheable {
		s.cache.SetStudent(ctx, nim, gen, userID, items)
	}

	log.Printf("[INFO] Transformed result for history peminjaman: %d records found", len(items))
	return items, nil
}

// ListHistory: admin melihat semua riwayat, role lain hanya user_id miliknya.
func (s *HistoryService) ListHistory(ctx context.Context, actor *helperAuth.Actor, q dto.ListHistoryQuery) (*dto.HistoryPage, error) {
	var userID *uint64
	if actor.HasRole(constants.RoleAdmin) {
		log.Println("[INFO] User role is admin, fetching all history")
	} else {
		if actor == nil {
			return nil, ErrActorRequired
		}
		id := actor.ID
		userID = &id
	}

	rows, total, err := s.repo.PaginateReturned(ctx, userID, q.Limit(), q.Offset())
	if err != nil {
		return nil, fmt.Errorf("paginate history: %w", err)
	}
	log.Printf("[INFO] History Fetched total=%d page=%d page_size=%d", total, q.Page, q.PageSize)

	return &dto.HistoryPage{
		Items:      dto.FromModels(rows),
		Pagination: dto.NewHistoryPagination(total, q),
	}, nil
}

// DeleteHistory menghapus permanen riwayat dikembalikan. Hanya admin.
// rawID yang bukan angka diperlakukan sebagai tidak ditemukan.
// Cache NIM diinvalidasi sebelum dan sesudah delete.
func (s *HistoryService) DeleteHistory(ctx context.Context, actor *helperAuth.Actor, rawID string) error {
	if !actor.HasRole(constants.RoleAdmin) {
		return ErrForbidden
	}

	id, err := strconv.ParseUint(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		log.Printf("[INFO] History id %q bukan angka", rawID)
		return ErrHistoryNotFound
	}

	rec, err := s.repo.FindReturnedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INFO] History not found peminjaman_id=%d", id)
			return ErrHistoryNotFound
		}
		return fmt.Errorf("find history %d: %w", id, err)
	}
	log.Printf("[INFO] History Found peminjaman_id=%d", id)

	// Invalidasi sebelum delete: kalau Redis gagal, batal hapus daripada
	// meninggalkan cache yang masih memuat baris ini.
	if err := s.cache.InvalidateStudent(ctx, rec.NIM); err != nil {
		return fmt.Errorf("delete history %d: %w", id, err)
	}
	if err := s.repo.Delete(ctx, rec); err != nil {
		return fmt.Errorf("delete history %d: %w", id, err)
	}
	// pembaca yang mengambil generasi baru di antara dua invalidasi
	if err := s.cache.InvalidateStudent(ctx, rec.NIM); err != nil {
		log.Printf("[WARN] %v", err)
	}

	log.Printf("[INFO] History Deleted history_id=%d", rec.ID)
	return nil
}
