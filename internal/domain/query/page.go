package query

import (
	"math"
	"strconv"

	domainerrors "catalog/internal/domain/errors"
)

const (
	// DefaultPage is used when the page parameter is absent.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent.
	DefaultLimit = 10
	// MaxLimit caps the page size.
	MaxLimit = 100

	PageParam  = "page"
	LimitParam = "limit"
)

// Page is a validated pagination window.
type Page struct {
	Number int
	Limit  int
}

// Offset is the number of documents skipped before this page. It saturates at
// math.MaxInt, so an oversized page always lands past the end.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}

	return (p.Number - 1) * p.Limit
}

// ParsePage reads page and limit. Absent values take the defaults; anything present
// must be an integer with page >= 1 and 1 <= limit <= MaxLimit, otherwise the request
// is rejected rather than silently clamped.
func ParsePage(params Params) (Page, error) {
	number, err := parsePositive(params, PageParam, DefaultPage)
	if err != nil {
		return Page{}, err
	}

	limit, err := parsePositive(params, LimitParam, DefaultLimit)
	if err != nil {
		return Page{}, err
	}
	if limit > MaxLimit {
		return Page{}, domainerrors.ErrInvalidQuery.WithDetails(LimitParam + " must not exceed " + strconv.Itoa(MaxLimit))
	}
	if maxPage := math.MaxInt/limit + 1; number > maxPage {
		return Page{}, domainerrors.ErrInvalidQuery.WithDetails(PageParam + " must not exceed " + strconv.Itoa(maxPage))
	}

	return Page{Number: number, Limit: limit}, nil
}

func parsePositive(params Params, name string, fallback int) (int, error) {
	raw := params.Get(name)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domainerrors.ErrInvalidQuery.WithDetails(name + " must be a positive integer")
	}

	return n, nil
}

// Result is one page of a listing together with its totals.
type Result[T any] struct {
	Items      []T
	Total      int64
	TotalPages int
	Current    int
}

// NewResult computes totals for a page. A page past the end yields no items but the
// same totals as any other page.
func NewResult[T any](items []T, total int64, page Page) Result[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if page.Limit > 0 {
		totalPages = int((total + int64(page.Limit) - 1) / int64(page.Limit))
	}

	return Result[T]{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Current:    page.Number,
	}
}
