package dto

import (
	"time"

	"peminjaman_backend/internals/features/peminjaman/history/model"
)

const dateLayout = "2006-01-02"

// HistoryItem adalah proyeksi publik peminjaman; id & user_id tidak pernah keluar.
type HistoryItem struct {
	NIM        string  `json:"nim"`
	KodePinjam string  `json:"kode_pinjam"`
	TglPinjam  string  `json:"tgl_pinjam"`
	TglKembali *string `json:"tgl_kembali"`
	Status     string  `json:"status"`
}

type HistoryPagination struct {
	TotalRows   int64 `json:"total_rows"`
	TotalPage   int   `json:"total_page"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

type HistoryPage struct {
	Items      []HistoryItem
	Pagination HistoryPagination
}

func FromModel(m model.PeminjamanModel) HistoryItem {
	item := HistoryItem{
		NIM:        m.NIM,
		KodePinjam: m.KodePinjam,
		TglPinjam:  time.Time(m.TglPinjam).Format(dateLayout),
		Status:     m.Status,
	}
	if m.TglKembali != nil {
		s := time.Time(*m.TglKembali).Format(dateLayout)
		item.TglKembali = &s
	}
	return item
}

// FromModels selalu mengembalikan slice non-nil supaya JSON-nya [] bukan null.
func FromModels(rows []model.PeminjamanModel) []HistoryItem {
	out := make([]HistoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// NewHistoryPagination: total_page minimal 1, sama seperti paginator lama.
func NewHistoryPagination(total int64, q ListHistoryQuery) HistoryPagination {
	totalPage := 1
	if total > 0 {
		totalPage = int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	}
	return HistoryPagination{
		TotalRows:   total,
		TotalPage:   totalPage,
		CurrentPage: q.Page,
		PageSize:    q.PageSize,
	}
}
