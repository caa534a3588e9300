package search

import (
	"context"

	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
	domsearch "github.com/corpus-works/corpusd/internal/domain/search"
)

// Repository defines the retrieval contract for the search service.
type Repository interface {
	Search(ctx context.Context, criteria domsearch.Criteria, limit int) (domsearch.Result, error)
	Recent(ctx context.Context, limit int) ([]domdoc.Document, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
}
