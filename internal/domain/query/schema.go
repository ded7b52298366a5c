// Package query turns listing request parameters into a store-neutral filter,
// page window and result envelope shared by every catalog listing.
package query

// ValueKind controls how an equality parameter is parsed.
type ValueKind int

const (
	// KindString keeps the trimmed raw value.
	KindString ValueKind = iota
	// KindBool parses with strconv.ParseBool; false is treated as absent.
	KindBool
	// KindUUID parses the value as a UUID.
	KindUUID
)

// SearchMode selects how the search term is matched.
type SearchMode int

const (
	// SearchColumns matches the term as a case-insensitive substring of any listed column.
	SearchColumns SearchMode = iota
	// SearchTextIndex matches the term against a single full-text index column.
	SearchTextIndex
)

// EqualityParam binds a request parameter to a column compared for equality.
type EqualityParam struct {
	Param  string
	Column string
	Kind   ValueKind
}

// Schema describes what a resource listing accepts.
type Schema struct {
	SearchMode    SearchMode
	SearchColumns []string // Used with SearchColumns.
	TextIndex     string   // Used with SearchTextIndex.
	Equality      []EqualityParam
	Sort          string // Defaults to DefaultSort.
}

// DefaultSort orders newest first.
const DefaultSort = "created_at DESC"

// SortOrder returns the schema sort or the default.
func (s Schema) SortOrder() string {
	if s.Sort == "" {
		return DefaultSort
	}

	return s.Sort
}
