// Package export renders search results as a CSV attachment. It shares the
// search criteria path with interactive search; only the result cap differs.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	domsearch "github.com/corpus-works/corpusd/internal/domain/search"
)

// Searcher is the criteria-driven retrieval contract export depends on.
type Searcher interface {
	SearchWithLimit(ctx context.Context, criteria domsearch.Criteria, limit int) (domsearch.Result, error)
}

// Header is the fixed CSV column order.
var Header = []string{
	"Corpus Filename",
	"Original Filename",
	"Client/Project",
	"Doc Type",
	"Status",
	"Modified Date",
	"Language",
}

// Service streams CSV exports of search results.
type Service struct {
	search Searcher
	limit  int
}

// New creates an export service with the export result cap.
func New(search Searcher, limit int) *Service {
	if limit <= 0 {
		limit = 1000
	}
	return &Service{search: search, limit: limit}
}

// Limit returns the export result cap.
func (s *Service) Limit() int { return s.limit }

// WriteCSV searches with the export cap and writes one row per hit to w.
// Zero hits produce a header-only CSV. Missing fields render as empty
// strings.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, criteria domsearch.Criteria) error {
	result, err := s.search.SearchWithLimit(ctx, criteria, s.limit)
	if err != nil {
		return fmt.Errorf("export search: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range result.Hits {
		doc := &result.Hits[i]
		meta := doc.Metadata()
		class := doc.Classification()

		modified := ""
		if !meta.ModifiedDate.IsZero() {
			modified = meta.ModifiedDate.UTC().Format(time.RFC3339)
		}

		row := []string{
			class.FilenameCorpus,
			doc.FilenameOriginal(),
			meta.ClientProjectName,
			class.DocType,
			class.Status,
			modified,
			class.Language,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Filename returns the attachment name for an export started at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("corpus_export_%s.csv", now.UTC().Format("20060102"))
}
