// Package document persists stored documents in the engine's hash layout and
// retrieves them by id, by search criteria, and by recency.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corpus-works/corpusd/internal/db"
	"github.com/corpus-works/corpusd/internal/domain"
	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
	"github.com/corpus-works/corpusd/internal/domain/search"
)

// store is the consumer interface for document persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Search(ctx context.Context, q *db.Query) (*db.Result, error)
	Count(ctx context.Context, index, query string) (int, error)
}

// Repo implements the ingest and search repository contracts.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create writes a new document hash. Create-once: ids are generated fresh
// per ingestion, so an existing key is never overwritten in practice.
func (r *Repo) Create(ctx context.Context, doc *domdoc.Document) error {
	key := domain.DocumentKey(doc.ID())
	if err := r.store.HSet(ctx, key, buildHashFields(doc)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a document by id.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	key := domain.DocumentKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return parseHashFields(id, fields), nil
}

// Search executes criteria-driven retrieval, capped at limit. Ordering is
// the engine's relevance order.
func (r *Repo) Search(ctx context.Context, criteria search.Criteria, limit int) (search.Result, error) {
	q, err := buildQuery(criteria, limit)
	if err != nil {
		return search.Result{}, err
	}

	res, err := r.store.Search(ctx, q)
	if err != nil {
		return search.Result{}, fmt.Errorf("search documents: %w", err)
	}

	return parseResult(res), nil
}

// Recent returns up to limit documents sorted by modification time
// descending. No criteria apply; this mode bypasses the query builder.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domdoc.Document, error) {
	q := &db.Query{
		Index:    domain.IndexName(),
		SortBy:   domain.FieldModifiedDate,
		SortDesc: true,
		Limit:    limit,
	}

	res, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("recent documents: %w", err)
	}

	return parseResult(res).Hits, nil
}

// Count returns the total number of stored documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.Count(ctx, domain.IndexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func parseResult(res *db.Result) search.Result {
	if res == nil || res.Total == 0 {
		return search.Result{}
	}

	prefix := domain.KeyPrefix + domain.CollectionName + ":"
	hits := make([]domdoc.Document, 0, len(res.Entries))
	for _, entry := range res.Entries {
		id := strings.TrimPrefix(entry.Key, prefix)
		hits = append(hits, parseHashFields(id, entry.Fields))
	}

	return search.Result{Total: res.Total, Hits: hits}
}
