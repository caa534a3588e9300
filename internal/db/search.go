package db

import "github.com/corpus-works/corpusd/internal/domain/search/filter"

// Query is the input for an FT search. Text, when set, is matched against
// TextFields (OR-combined, scored); Filters are pure boolean pre-filters.
// When both are empty the query matches every document in the index.
type Query struct {
	Index        string
	Text         string
	TextFields   []string
	Filters      filter.Expression
	SortBy       string
	SortDesc     bool
	Offset       int
	Limit        int
	ReturnFields []string
}

// Result is the output of a search operation.
type Result struct {
	Total   int
	Entries []Entry
}

// Entry is a single document hit.
type Entry struct {
	Key    string
	Fields map[string]string
}
