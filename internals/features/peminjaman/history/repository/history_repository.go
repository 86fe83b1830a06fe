// internals/features/peminjaman/history/repository/history_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"peminjaman_backend/internals/features/peminjaman/history/model"
)

// HistoryRepository hanya melihat peminjaman berstatus dikembalikan.
// userID nil berarti tanpa filter user_id.
type HistoryRepository interface {
	FindReturnedByNIM(ctx context.Context, nim string, userID *uint64) ([]model.PeminjamanModel, error)
	PaginateReturned(ctx context.Context, userID *uint64, limit, offset int) ([]model.PeminjamanModel, int64, error)
	// FindReturnedByID mengembalikan gorm.ErrRecordNotFound kalau tidak ada.
	FindReturnedByID(ctx context.Context, id uint64) (*model.PeminjamanModel, error)
	Delete(ctx context.Context, rec *model.PeminjamanModel) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) returned(ctx context.Context, userID *uint64) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&model.PeminjamanModel{}).
		Where("status = ?", model.StatusDikembalikan)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	return q
}

/* ====================== READ ====================== */

func (r *historyRepository) FindReturnedByNIM(ctx context.Context, nim string, userID *uint64) ([]model.PeminjamanModel, error) {
	var rows []model.PeminjamanModel
	if err := r.returned(ctx, userID).
		Where("nim = ?", nim).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *historyRepository) PaginateReturned(ctx context.Context, userID *uint64, limit, offset int) ([]model.PeminjamanModel, int64, error) {
	// Session baru supaya Count dan Find tidak saling mengotori statement
	base := r.returned(ctx, userID).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PeminjamanModel
	if err := base.
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *historyRepository) FindReturnedByID(ctx context.Context, id uint64) (*model.PeminjamanModel, error) {
	var rec model.PeminjamanModel
	if err := r.returned(ctx, nil).
		Where("id = ?", id).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

/* ====================== DELETE ====================== */

func (r *historyRepository) Delete(ctx context.Context, rec *model.PeminjamanModel) error {
	return r.db.WithContext(ctx).Delete(rec).Error
}
