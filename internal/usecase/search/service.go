// Package search orchestrates criteria-driven retrieval, the recent mode,
// and id lookups over the documents index.
package search

import (
	"context"
	"fmt"

	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
	domsearch "github.com/corpus-works/corpusd/internal/domain/search"
)

// Service handles interactive search and lookups.
type Service struct {
	repo         Repository
	defaultLimit int
	recentLimit  int
}

// New creates a search service with the interactive result cap and the
// default recent-mode limit.
func New(repo Repository, defaultLimit, recentLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	if recentLimit <= 0 {
		recentLimit = 20
	}
	return &Service{repo: repo, defaultLimit: defaultLimit, recentLimit: recentLimit}
}

// Search runs criteria-driven retrieval capped at the interactive limit.
// Empty criteria match the whole collection, bounded by the cap.
func (s *Service) Search(ctx context.Context, criteria domsearch.Criteria) (domsearch.Result, error) {
	result, err := s.repo.Search(ctx, criteria, s.defaultLimit)
	if err != nil {
		return domsearch.Result{}, fmt.Errorf("search: %w", err)
	}
	return result, nil
}

// SearchWithLimit runs the same criteria translation with a caller-chosen
// cap. Export uses this with its larger fixed limit.
func (s *Service) SearchWithLimit(
	ctx context.Context, criteria domsearch.Criteria, limit int,
) (domsearch.Result, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	result, err := s.repo.Search(ctx, criteria, limit)
	if err != nil {
		return domsearch.Result{}, fmt.Errorf("search: %w", err)
	}
	return result, nil
}

// Recent returns documents sorted by modification time descending, capped at
// limit (default when non-positive).
func (s *Service) Recent(ctx context.Context, limit int) ([]domdoc.Document, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	docs, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	return docs, nil
}

// Get returns a document by id.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}
