package dto

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPage     = "1"
	DefaultPageSize = "1"
	MaxPageSize     = 50

	// Pesan yang sama dipakai untuk page dan page_size (kontrak lama dipertahankan).
	MsgInvalidPaging = "Invalid page size number. Page size number must be a > 1 positive integer."
)

var validate = validator.New()

// ListHistoryQuery adalah parameter ?page=&page_size= yang sudah tervalidasi.
type ListHistoryQuery struct {
	Page     int
	PageSize int
}

func (q ListHistoryQuery) Limit() int  { return q.PageSize }
func (q ListHistoryQuery) Offset() int { return (q.Page - 1) * q.PageSize }

type PagingError struct {
	Field   string
	Value   string
	Message string
}

func (e *PagingError) Error() string {
	return e.Field + "=" + strconv.Quote(e.Value) + ": " + e.Message
}

// ParseListHistoryQuery memvalidasi page lebih dulu, lalu page_size.
// page_size di-cap ke MaxPageSize SEBELUM dicek >= 1, jadi 0 dan negatif tetap ditolak.
func ParseListHistoryQuery(pageRaw, pageSizeRaw string) (ListHistoryQuery, error) {
	page, ok := parseNumeric(pageRaw)
	if !ok || page < 1 || page > math.MaxInt32 {
		return ListHistoryQuery{}, &PagingError{Field: "page", Value: pageRaw, Message: MsgInvalidPaging}
	}

	size, ok := parseNumeric(pageSizeRaw)
	if ok {
		size = math.Min(size, MaxPageSize)
	}
	if size == -1 || !ok || size < 1 {
		return ListHistoryQuery{}, &PagingError{Field: "page_size", Value: pageSizeRaw, Message: MsgInvalidPaging}
	}

	return ListHistoryQuery{
		Page:     int(page),
		PageSize: int(size),
	}, nil
}

// parseNumeric menerima bilangan bulat atau desimal ("2", "-3", "1.5"), spasi di tepi diabaikan.
func parseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if err := validate.Var(s, "required,numeric"); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
