package db

import (
	"context"
)

// Store is the main engine facade combining all sub-interfaces. Consumers
// depend on the narrow sub-interfaces they actually use.
type Store interface {
	Pinger
	HashStore
	IndexManager
	Searcher
	Close()
}

// Pinger checks engine connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based document storage operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher executes FT queries.
type Searcher interface {
	Search(ctx context.Context, q *Query) (*Result, error)
	Count(ctx context.Context, index, query string) (int, error)
}
