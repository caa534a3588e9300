// Package ingest turns a raw agent submission into a stored, classified
// document record.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/corpus-works/corpusd/internal/classifier"
	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
	logpkg "github.com/corpus-works/corpusd/internal/logger"
	"github.com/corpus-works/corpusd/internal/metrics"
)

// Receipt acknowledges a successful ingestion.
type Receipt struct {
	DocumentID     string
	FilenameCorpus string
}

// Service is the ingestion pipeline: parse, classify, compose, persist.
type Service struct {
	repo  Repository
	blobs BlobStore
}

// New creates an ingestion service. blobs may be nil when no corpus files
// directory is configured.
func New(repo Repository, blobs BlobStore) *Service {
	return &Service{repo: repo, blobs: blobs}
}

// Ingest processes one submission: the JSON payload plus the original file
// bytes. Exactly one document is created per successful call; repeated
// ingestion of the same logical file creates a new entry under a fresh id.
func (s *Service) Ingest(
	ctx context.Context, rawPayload []byte, originalFilename string, original []byte,
) (Receipt, error) {
	p, err := parsePayload(rawPayload)
	if err != nil {
		metrics.IngestFailuresTotal.WithLabelValues("invalid_payload").Inc()
		return Receipt{}, err
	}

	meta := p.toMetadata()
	class := classifier.Classify(p.Content, meta, originalFilename)
	noteDegraded(ctx, class, originalFilename)

	doc := domdoc.New(
		uuid.NewString(),
		originalFilename,
		meta,
		class,
		p.Content,
		time.Now().UTC(),
	)

	if err := s.repo.Create(ctx, &doc); err != nil {
		metrics.IngestFailuresTotal.WithLabelValues("storage").Inc()
		return Receipt{}, fmt.Errorf("store document: %w", err)
	}

	s.saveOriginal(ctx, class.FilenameCorpus, original)

	metrics.IngestedDocumentsTotal.WithLabelValues(class.DocType, class.Status).Inc()

	return Receipt{DocumentID: doc.ID(), FilenameCorpus: class.FilenameCorpus}, nil
}

// saveOriginal copies the uploaded binary into the corpus files dir. The
// index entry is the document of record; a failed file copy is logged, not
// surfaced.
func (s *Service) saveOriginal(ctx context.Context, filenameCorpus string, original []byte) {
	if s.blobs == nil || len(original) == 0 {
		return
	}
	if err := s.blobs.Save(filenameCorpus, original); err != nil {
		logpkg.FromContext(ctx).Warn("failed to save original file",
			zap.String("filename_corpus", filenameCorpus),
			zap.Error(err),
		)
	}
}

// noteDegraded records classification stages that fell back to their default
// category. Degraded classification is not an error and never fails the
// pipeline.
func noteDegraded(ctx context.Context, class domdoc.Classification, originalFilename string) {
	log := logpkg.FromContext(ctx)

	if class.Language == classifier.LanguageUnknown {
		metrics.ClassificationFallbackTotal.WithLabelValues("language").Inc()
		log.Debug("language detection degraded to unknown",
			zap.String("filename_original", originalFilename))
	}
	if class.DocType == classifier.DocTypeMisc {
		metrics.ClassificationFallbackTotal.WithLabelValues("doc_type").Inc()
	}
	if class.Status == classifier.StatusProcessed {
		metrics.ClassificationFallbackTotal.WithLabelValues("status").Inc()
	}
}
