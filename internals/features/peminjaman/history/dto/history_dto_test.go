package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"peminjaman_backend/internals/features/peminjaman/history/model"
)

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestFromModel(t *testing.T) {
	kembali := date(2024, time.March, 9)
	item := FromModel(model.PeminjamanModel{
		ID:         11,
		NIM:        "2201001",
		UserID:     7,
		KodePinjam: "PJM-0011",
		TglPinjam:  date(2024, time.March, 2),
		TglKembali: &kembali,
		Status:     model.StatusDikembalikan,
	})

	assert.Equal(t, "2201001", item.NIM)
	assert.Equal(t, "PJM-0011", item.KodePinjam)
	assert.Equal(t, "2024-03-02", item.TglPinjam)
	require.NotNil(t, item.TglKembali)
	assert.Equal(t, "2024-03-09", *item.TglKembali)
	assert.Equal(t, model.StatusDikembalikan, item.Status)
}

func TestFromModel_NoReturnDate(t *testing.T) {
	item := FromModel(model.PeminjamanModel{NIM: "x", TglPinjam: date(2024, time.January, 1)})
	assert.Nil(t, item.TglKembali)
}

func TestFromModels_EmptyIsNotNil(t *testing.T) {
	items := FromModels(nil)
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestNewHistoryPagination(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		q     ListHistoryQuery
		want  HistoryPagination
	}{
		{"empty still one page", 0, ListHistoryQuery{Page: 1, PageSize: 10},
			HistoryPagination{TotalRows: 0, TotalPage: 1, CurrentPage: 1, PageSize: 10}},
		{"single page", 3, ListHistoryQuery{Page: 1, PageSize: 10},
			HistoryPagination{TotalRows: 3, TotalPage: 1, CurrentPage: 1, PageSize: 10}},
		{"ceil", 11, ListHistoryQuery{Page: 2, PageSize: 5},
			HistoryPagination{TotalRows: 11, TotalPage: 3, CurrentPage: 2, PageSize: 5}},
		{"page past the end kept", 4, ListHistoryQuery{Page: 9, PageSize: 2},
			HistoryPagination{TotalRows: 4, TotalPage: 2, CurrentPage: 9, PageSize: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewHistoryPagination(tc.total, tc.q))
		})
	}
}
