package document

import (
	"fmt"

	"github.com/corpus-works/corpusd/internal/db"
	"github.com/corpus-works/corpusd/internal/domain"
	"github.com/corpus-works/corpusd/internal/domain/search"
	"github.com/corpus-works/corpusd/internal/domain/search/filter"
)

// textFields are the fields a free-text query is scored against. The same
// text matches all three and the best-scoring field wins; matching any one
// field is enough.
var textFields = []string{
	domain.FieldContent,
	domain.AliasFilenameText,
	domain.AliasProjectText,
}

// buildQuery translates search criteria into an engine query. Interactive
// search and CSV export share this translation; only the limit differs.
// Empty criteria produce a match-all query bounded by the limit.
func buildQuery(criteria search.Criteria, limit int) (*db.Query, error) {
	conditions, err := buildConditions(criteria)
	if err != nil {
		return nil, err
	}

	q := &db.Query{
		Index:   domain.IndexName(),
		Filters: filter.NewExpression(conditions...),
		Limit:   limit,
	}
	if criteria.Query != "" {
		q.Text = criteria.Query
		q.TextFields = textFields
	}
	return q, nil
}

// buildConditions maps the exact-match and date-range criteria onto boolean
// filter conditions. All of them combine with logical AND.
func buildConditions(criteria search.Criteria) ([]filter.Condition, error) {
	var conditions []filter.Condition

	if criteria.ClientProject != "" {
		cond, err := filter.NewMatch(domain.FieldClientProjectName, criteria.ClientProject)
		if err != nil {
			return nil, fmt.Errorf("client_project filter: %w", err)
		}
		conditions = append(conditions, cond)
	}

	if criteria.DocType != "" {
		cond, err := filter.NewMatch(domain.FieldDocType, criteria.DocType)
		if err != nil {
			return nil, fmt.Errorf("doc_type filter: %w", err)
		}
		conditions = append(conditions, cond)
	}

	if criteria.HasDateRange() {
		var gte, lt *float64
		if criteria.DateFrom != nil {
			v := float64(criteria.DateFrom.UnixMilli())
			gte = &v
		}
		if criteria.DateTo != nil {
			v := float64(criteria.DateTo.UnixMilli())
			lt = &v
		}
		r, err := filter.NewRangeBounds(gte, lt)
		if err != nil {
			return nil, fmt.Errorf("date range filter: %w", err)
		}
		cond, err := filter.NewRange(domain.FieldModifiedDate, r)
		if err != nil {
			return nil, fmt.Errorf("date range filter: %w", err)
		}
		conditions = append(conditions, cond)
	}

	return conditions, nil
}
