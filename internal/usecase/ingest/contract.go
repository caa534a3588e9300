package ingest

import (
	"context"

	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
)

// Repository defines the storage contract for ingested documents.
type Repository interface {
	Create(ctx context.Context, doc *domdoc.Document) error
}

// BlobStore keeps the uploaded original file alongside the index entry.
type BlobStore interface {
	Save(filename string, data []byte) error
}
