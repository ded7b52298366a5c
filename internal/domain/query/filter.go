package query

import (
	"strconv"
	"strings"

	domainerrors "catalog/internal/domain/errors"

	"github.com/google/uuid"
)

// SearchParam is the request parameter carrying the free-text term.
const SearchParam = "search"

// Params are the raw single-valued query parameters of a request.
type Params map[string]string

// Get returns the trimmed value of a parameter, or "" when absent.
func (p Params) Get(name string) string {
	return strings.TrimSpace(p[name])
}

// Search is a case-insensitive match of Term against a text index or a set of columns.
type Search struct {
	Term      string
	Mode      SearchMode
	Columns   []string
	TextIndex string
}

// Condition is an equality constraint on a column.
type Condition struct {
	Column string
	Value  any
}

// Filter is the conjunction of an optional search and zero or more equality conditions.
// The zero value matches every document.
type Filter struct {
	Search     *Search
	Conditions []Condition
	Sort       string
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	return f.Search == nil && len(f.Conditions) == 0
}

// BuildFilter applies a constraint for each recognised parameter that carries a truthy
// value. Absent, empty and false-valued parameters are omitted from the filter entirely.
func BuildFilter(schema Schema, params Params) (Filter, error) {
	filter := Filter{Sort: schema.SortOrder()}

	if term := params.Get(SearchParam); term != "" {
		filter.Search = &Search{
			Term:      term,
			Mode:      schema.SearchMode,
			Columns:   schema.SearchColumns,
			TextIndex: schema.TextIndex,
		}
	}

	for _, eq := range schema.Equality {
		raw := params.Get(eq.Param)
		if raw == "" {
			continue
		}

		value, ok, err := parseValue(eq, raw)
		if err != nil {
			return Filter{}, err
		}
		if !ok {
			continue
		}

		filter.Conditions = append(filter.Conditions, Condition{Column: eq.Column, Value: value})
	}

	return filter, nil
}

func parseValue(eq EqualityParam, raw string) (any, bool, error) {
	switch eq.Kind {
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, false, domainerrors.ErrInvalidQuery.WithDetails(eq.Param + " must be a boolean")
		}

		return b, b, nil
	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, false, domainerrors.ErrInvalidQuery.WithDetails(eq.Param + " must be a valid id")
		}

		return id, true, nil
	default:
		return raw, true, nil
	}
}
