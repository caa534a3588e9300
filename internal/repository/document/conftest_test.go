package document

import (
	"context"
	"testing"
	"time"

	"github.com/corpus-works/corpusd/internal/db"
	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn    func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn func(ctx context.Context, key string) (map[string]string, error)
	searchFn  func(ctx context.Context, q *db.Query) (*db.Result, error)
	countFn   func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.Result, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.Result{}, nil
}

func (m *mockStore) Count(ctx context.Context, index, query string) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, index, query)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms)
	return repo, ms
}

func testDocument(t *testing.T) domdoc.Document {
	t.Helper()
	meta := domdoc.Metadata{
		FilenameFullPath:  "/mnt/share/acme/Contract.docx",
		ClientProjectName: "Acme Corp",
		CreatedDate:       time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
		ModifiedDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		SourceHostname:    "fileserver-01",
		Creator:           "jdoe",
		Modifier:          "asmith",
		Tags:              []string{"legal", "priority"},
	}
	class := domdoc.Classification{
		Language:       "en",
		DocType:        "AGMT",
		Status:         "EXECUTED",
		FilenameCorpus: "2024-03-15_AGMT_Contract_EXECUTED.docx",
	}
	return domdoc.New("doc-1", "Contract.docx", meta, class,
		"This Agreement, executed this day",
		time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC),
	)
}
