// Package search holds the criteria and result value objects shared by
// interactive search and CSV export.
package search

import (
	"time"

	"github.com/corpus-works/corpusd/internal/domain/document"
)

// Criteria is the structured search request. Every field is optional; empty
// criteria match the whole collection, bounded by the result cap.
type Criteria struct {
	Query         string
	ClientProject string
	DocType       string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// IsEmpty reports whether no criteria field is set.
func (c Criteria) IsEmpty() bool {
	return c.Query == "" && c.ClientProject == "" && c.DocType == "" &&
		c.DateFrom == nil && c.DateTo == nil
}

// HasDateRange reports whether at least one date bound is set.
func (c Criteria) HasDateRange() bool {
	return c.DateFrom != nil || c.DateTo != nil
}

// Result is an ordered page of hits. Ordering is engine relevance order for
// free-text queries and descending modification time for the recent mode.
type Result struct {
	Total int
	Hits  []document.Document
}
