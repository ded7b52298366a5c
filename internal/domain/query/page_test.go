package query

import (
	"math"
	"strconv"
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage_Defaults(t *testing.T) {
	page, err := ParsePage(Params{})

	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, Limit: 10}, page)
	assert.Equal(t, 0, page.Offset())
}

func TestParsePage_Offset(t *testing.T) {
	page, err := ParsePage(Params{"page": "3", "limit": "10"})

	require.NoError(t, err)
	assert.Equal(t, 20, page.Offset())
}

func TestParsePage_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "zero limit", params: Params{"limit": "0"}},
		{name: "negative page", params: Params{"page": "-1"}},
		{name: "zero page", params: Params{"page": "0"}},
		{name: "non numeric", params: Params{"page": "two"}},
		{name: "limit above max", params: Params{"limit": "101"}},
		{name: "page offset overflows", params: Params{"page": "1000000000000000000", "limit": "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePage(tt.params)

			require.Error(t, err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestParsePage_LargestPageKeepsOffsetInRange(t *testing.T) {
	page, err := ParsePage(Params{"page": strconv.Itoa(math.MaxInt/10 + 1), "limit": "10"})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, page.Offset(), 0)
}

func TestPage_OffsetSaturates(t *testing.T) {
	page := Page{Number: 1000000000000000000, Limit: 10}

	assert.Equal(t, math.MaxInt, page.Offset())
}

func TestNewResult_Totals(t *testing.T) {
	tests := []struct {
		name           string
		items          int
		total          int64
		page           Page
		wantTotalPages int
	}{
		{name: "last partial page", items: 5, total: 25, page: Page{Number: 3, Limit: 10}, wantTotalPages: 3},
		{name: "page past the end", items: 0, total: 25, page: Page{Number: 4, Limit: 10}, wantTotalPages: 3},
		{name: "exact multiple", items: 10, total: 20, page: Page{Number: 2, Limit: 10}, wantTotalPages: 2},
		{name: "empty listing", items: 0, total: 0, page: Page{Number: 1, Limit: 10}, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewResult(make([]int, tt.items), tt.total, tt.page)

			assert.Len(t, result.Items, tt.items)
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
			assert.Equal(t, tt.page.Number, result.Current)
		})
	}
}

func TestNewResult_NilItemsBecomeEmpty(t *testing.T) {
	result := NewResult[string](nil, 0, Page{Number: 1, Limit: 10})

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}
