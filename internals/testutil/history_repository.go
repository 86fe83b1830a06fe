package testutil

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"peminjaman_backend/internals/features/peminjaman/history/model"
	"peminjaman_backend/internals/features/peminjaman/history/repository"
)

var _ repository.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository adalah repository.HistoryRepository in-memory, khusus test.
type HistoryRepository struct {
	mu   sync.RWMutex
	rows map[uint64]model.PeminjamanModel

	// Err, kalau diisi, dikembalikan oleh semua operasi (simulasi DB down).
	Err error
}

func NewHistoryRepository(rows ...model.PeminjamanModel) *HistoryRepository {
	m := &HistoryRepository{rows: make(map[uint64]model.PeminjamanModel, len(rows))}
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return m
}

func (m *HistoryRepository) Get(id uint64) (model.PeminjamanModel, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rows[id]
	return r, ok
}

func (m *HistoryRepository) filter(match func(model.PeminjamanModel) bool) []model.PeminjamanModel {
	out := make([]model.PeminjamanModel, 0)
	for _, r := range m.rows {
		if r.Status == model.StatusDikembalikan && match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sameUser(userID *uint64, r model.PeminjamanModel) bool {
	return userID == nil || r.UserID == *userID
}

func (m *HistoryRepository) FindReturnedByNIM(ctx context.Context, nim string, userID *uint64) ([]model.PeminjamanModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.filter(func(r model.PeminjamanModel) bool {
		return r.NIM == nim && sameUser(userID, r)
	}), nil
}

func (m *HistoryRepository) PaginateReturned(ctx context.Context, userID *uint64, limit, offset int) ([]model.PeminjamanModel, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, 0, m.Err
	}
	all := m.filter(func(r model.PeminjamanModel) bool { return sameUser(userID, r) })
	total := int64(len(all))
	if offset >= len(all) {
		return []model.PeminjamanModel{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *HistoryRepository) FindReturnedByID(ctx context.Context, id uint64) (*model.PeminjamanModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.rows[id]
	if !ok || r.Status != model.StatusDikembalikan {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *HistoryRepository) Delete(ctx context.Context, rec *model.PeminjamanModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.rows, rec.ID)
	return nil
}
