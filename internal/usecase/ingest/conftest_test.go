package ingest

import (
	"context"
	"encoding/json"
	"testing"

	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	createFn func(ctx context.Context, doc *domdoc.Document) error
	created  []*domdoc.Document
}

func (m *mockRepo) Create(ctx context.Context, doc *domdoc.Document) error {
	m.created = append(m.created, doc)
	if m.createFn != nil {
		return m.createFn(ctx, doc)
	}
	return nil
}

// mockBlobs implements BlobStore for tests.
type mockBlobs struct {
	saveFn func(filename string, data []byte) error
	saved  map[string][]byte
}

func (m *mockBlobs) Save(filename string, data []byte) error {
	if m.saved == nil {
		m.saved = make(map[string][]byte)
	}
	m.saved[filename] = data
	if m.saveFn != nil {
		return m.saveFn(filename, data)
	}
	return nil
}

func validPayload(t *testing.T, mutate func(m map[string]any)) []byte {
	t.Helper()
	meta := map[string]any{
		"filename_full_path":  "/mnt/share/acme/Contract draft.docx",
		"client_project_name": "Acme Corp",
		"created_date":        float64(1700000000),
		"modified_date":       float64(1710460800), // 2024-03-15T00:00:00Z
		"source_hostname":     "fileserver-01",
		"creator":             "jdoe",
		"modifier":            "asmith",
	}
	if mutate != nil {
		mutate(meta)
	}
	raw, err := json.Marshal(map[string]any{
		"metadata": meta,
		"content":  "Draft Agreement between Acme Corp and the vendor",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return raw
}
