package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"peminjaman_backend/internals/constants"
	"peminjaman_backend/internals/features/peminjaman/history/dto"
	"peminjaman_backend/internals/features/peminjaman/history/model"
	helperAuth "peminjaman_backend/internals/helpers/auth"
	"peminjaman_backend/internals/testutil"
)

var (
	admin    = &helperAuth.Actor{ID: 1, Role: constants.RoleAdmin}
	student7 = &helperAuth.Actor{ID: 7, Role: constants.RoleStudent}
	operator = &helperAuth.Actor{ID: 7, Role: "operator"}
)

func loan(id uint64, nim string, userID uint64, status string) model.PeminjamanModel {
	kembali := datatypes.Date(time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))
	return model.PeminjamanModel{
		ID:         id,
		NIM:        nim,
		UserID:     userID,
		KodePinjam: fmt.Sprintf("PJM-%s-%d", nim, id),
		TglPinjam:  datatypes.Date(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		TglKembali: &kembali,
		Status:     status,
	}
}

// seedRepo: NIM A1 punya dua riwayat (user 7 & 8) + satu masih dipinjam; NIM B2 dua riwayat.
func seedRepo() *testutil.HistoryRepository {
	return testutil.NewHistoryRepository(
		loan(1, "A1", 7, model.StatusDikembalikan),
		loan(2, "A1", 8, model.StatusDikembalikan),
		loan(3, "A1", 7, model.StatusDipinjam),
		loan(4, "B2", 8, model.StatusDikembalikan),
		loan(5, "B2", 7, model.StatusDikembalikan),
	)
}

func codes(items []dto.HistoryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.KodePinjam)
	}
	return out
}

/* ====================== GetHistoryByStudent ====================== */

func TestGetHistoryByStudent_Visibility(t *testing.T) {
	cases := []struct {
		name  string
		actor *helperAuth.Actor
		nim   string
		want  []string
	}{
		{"anonymous sees all returned for nim", nil, "A1", []string{"PJM-A1-1", "PJM-A1-2"}},
		{"admin sees all returned for nim", admin, "A1", []string{"PJM-A1-1", "PJM-A1-2"}},
		{"student restricted to own user id", student7, "A1", []string{"PJM-A1-1"}},
		{"other roles are not restricted", operator, "B2", []string{"PJM-B2-4", "PJM-B2-5"}},
		{"unknown nim is empty", admin, "ZZ", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewHistoryService(seedRepo(), nil)
			items, err := svc.GetHistoryByStudent(context.Background(), tc.actor, tc.nim)
			require.NoError(t, err)
			require.NotNil(t, items)
			assert.Equal(t, tc.want, codes(items))
			for _, it := range items {
				assert.Equal(t, tc.nim, it.NIM)
				assert.Equal(t, model.StatusDikembalikan, it.Status)
			}
		})
	}
}

func TestGetHistoryByStudent_StoreError(t *testing.T) {
	repo := seedRepo()
	repo.Err = errors.New("connection reset")
	svc := NewHistoryService(repo, nil)

	_, err := svc.GetHistoryByStudent(context.Background(), nil, "A1")
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.Err)
}

/* ====================== ListHistory ====================== */

func TestListHistory_AdminSeesAllReturned(t *testing.T) {
	repo := testutil.NewHistoryRepository(
		loan(1, "A1", 7, model.StatusDikembalikan),
		loan(2, "A2", 8, model.StatusDikembalikan),
		loan(3, "A3", 9, model.StatusDikembalikan),
		loan(4, "A4", 7, model.StatusDipinjam),
		loan(5, "A5", 8, model.StatusDipinjam),
	)
	svc := NewHistoryService(repo, nil)

	page, err := svc.ListHistory(context.Background(), admin, dto.ListHistoryQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, dto.HistoryPagination{TotalRows: 3, TotalPage: 1, CurrentPage: 1, PageSize: 10}, page.Pagination)
}

func TestListHistory_StudentSeesOwnOnly(t *testing.T) {
	repo := testutil.NewHistoryRepository(
		loan(1, "A1", 7, model.StatusDikembalikan),
		loan(2, "A1", 8, model.StatusDikembalikan),
	)
	svc := NewHistoryService(repo, nil)

	page, err := svc.ListHistory(context.Background(), student7, dto.ListHistoryQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"PJM-A1-1"}, codes(page.Items))
	assert.EqualValues(t, 1, page.Pagination.TotalRows)
}

func TestListHistory_NonAdminRoleFiltersByUser(t *testing.T) {
	svc := NewHistoryService(seedRepo(), nil)

	page, err := svc.ListHistory(context.Background(), operator, dto.ListHistoryQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"PJM-A1-1", "PJM-B2-5"}, codes(page.Items))
}

func TestListHistory_Paginates(t *testing.T) {
	svc := NewHistoryService(seedRepo(), nil)

	page, err := svc.ListHistory(context.Background(), admin, dto.ListHistoryQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"PJM-B2-4", "PJM-B2-5"}, codes(page.Items))
	assert.Equal(t, dto.HistoryPagination{TotalRows: 4, TotalPage: 2, CurrentPage: 2, PageSize: 2}, page.Pagination)

	past, err := svc.ListHistory(context.Background(), admin, dto.ListHistoryQuery{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, past.Items)
	assert.EqualValues(t, 4, past.Pagination.TotalRows)
}

func TestListHistory_RequiresActorForNonAdmin(t *testing.T) {
	svc := NewHistoryService(seedRepo(), nil)

	_, err := svc.ListHistory(context.Background(), nil, dto.ListHistoryQuery{Page: 1, PageSize: 1})
	assert.ErrorIs(t, err, ErrActorRequired)
}

func TestListHistory_StoreError(t *testing.T) {
	repo := seedRepo()
	repo.Err = errors.New("timeout")
	svc := NewHistoryService(repo, nil)

	_, err := svc.ListHistory(context.Background(), admin, dto.ListHistoryQuery{Page: 1, PageSize: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.Err)
	assert.NotErrorIs(t, err, ErrActorRequired)
}

/* ====================== DeleteHistory ====================== */

func TestDeleteHistory_NonAdminForbidden(t *testing.T) {
	for _, actor := range []*helperAuth.Actor{nil, student7, operator} {
		repo := seedRepo()
		svc := NewHistoryService(repo, nil)

		assert.ErrorIs(t, svc.DeleteHistory(context.Background(), actor, "1"), ErrForbidden)
		assert.ErrorIs(t, svc.DeleteHistory(context.Background(), actor, "999"), ErrForbidden)

		_, ok := repo.Get(1)
		assert.True(t, ok, "record must survive a forbidden delete")
	}
}

func TestDeleteHistory_NotFound(t *testing.T) {
	repo := seedRepo()
	svc := NewHistoryService(repo, nil)

	for _, id := range []string{"999", "abc", "", "-1"} {
		assert.ErrorIs(t, svc.DeleteHistory(context.Background(), admin, id), ErrHistoryNotFound, "id %q", id)
	}

	// masih dipinjam: ada di tabel tapi bukan riwayat
	assert.ErrorIs(t, svc.DeleteHistory(context.Background(), admin, "3"), ErrHistoryNotFound)
	_, ok := repo.Get(3)
	assert.True(t, ok)
}

func TestDeleteHistory_RemovesFromReads(t *testing.T) {
	repo := seedRepo()
	svc := NewHistoryService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.DeleteHistory(ctx, admin, "1"))

	_, ok := repo.Get(1)
	assert.False(t, ok)

	items, err := svc.GetHistoryByStudent(ctx, nil, "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"PJM-A1-2"}, codes(items))

	page, err := svc.ListHistory(ctx, student7, dto.ListHistoryQuery{Page: 1, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, []string{"PJM-B2-5"}, codes(page.Items))

	assert.ErrorIs(t, svc.DeleteHistory(ctx, admin, "1"), ErrHistoryNotFound)
}

func TestDeleteHistory_StoreError(t *testing.T) {
	repo := seedRepo()
	repo.Err = errors.New("db down")
	svc := NewHistoryService(repo, nil)

	err := svc.DeleteHistory(context.Background(), admin, "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrHistoryNotFound)
	assert.ErrorIs(t, err, repo.Err)
}
