package query

import (
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productSchema = Schema{
	SearchMode: SearchTextIndex,
	TextIndex:  "search_vector",
	Equality: []EqualityParam{
		{Param: "brand", Column: "brand_id", Kind: KindUUID},
		{Param: "isPublish", Column: "is_publish", Kind: KindBool},
		{Param: "isFeatured", Column: "is_featured", Kind: KindBool},
	},
}

func TestBuildFilter_EmptyParamsMatchEverything(t *testing.T) {
	filter, err := BuildFilter(productSchema, Params{})

	require.NoError(t, err)
	assert.True(t, filter.IsEmpty())
	assert.Nil(t, filter.Search)
	assert.Empty(t, filter.Conditions)
	assert.Equal(t, DefaultSort, filter.Sort)
}

func TestBuildFilter_SearchAndEqualityCombine(t *testing.T) {
	brandID := uuid.New()

	filter, err := BuildFilter(productSchema, Params{
		"search": "milk",
		"brand":  brandID.String(),
	})

	require.NoError(t, err)
	require.NotNil(t, filter.Search)
	assert.Equal(t, "milk", filter.Search.Term)
	assert.Equal(t, SearchTextIndex, filter.Search.Mode)
	assert.Equal(t, "search_vector", filter.Search.TextIndex)
	assert.Equal(t, []Condition{{Column: "brand_id", Value: brandID}}, filter.Conditions)
}

func TestBuildFilter_FalsyValuesAreOmitted(t *testing.T) {
	filter, err := BuildFilter(productSchema, Params{
		"search":     "   ",
		"brand":      "",
		"isPublish":  "false",
		"isFeatured": "0",
	})

	require.NoError(t, err)
	assert.True(t, filter.IsEmpty())
}

func TestBuildFilter_TruthyBooleans(t *testing.T) {
	filter, err := BuildFilter(productSchema, Params{"isPublish": "true", "isFeatured": "1"})

	require.NoError(t, err)
	assert.Equal(t, []Condition{
		{Column: "is_publish", Value: true},
		{Column: "is_featured", Value: true},
	}, filter.Conditions)
}

func TestBuildFilter_UnknownParamsIgnored(t *testing.T) {
	filter, err := BuildFilter(productSchema, Params{"color": "red", "page": "2"})

	require.NoError(t, err)
	assert.True(t, filter.IsEmpty())
}

func TestBuildFilter_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "bad bool", params: Params{"isPublish": "yes please"}},
		{name: "bad uuid", params: Params{"brand": "b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFilter(productSchema, tt.params)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuery))
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestBuildFilter_ColumnSearchCarriesColumns(t *testing.T) {
	schema := Schema{SearchMode: SearchColumns, SearchColumns: []string{"name", "description"}, Sort: "name ASC"}

	filter, err := BuildFilter(schema, Params{"search": "Milk"})

	require.NoError(t, err)
	require.NotNil(t, filter.Search)
	assert.Equal(t, []string{"name", "description"}, filter.Search.Columns)
	assert.Equal(t, "name ASC", filter.Sort)
}
