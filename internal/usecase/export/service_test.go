package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
	domsearch "github.com/corpus-works/corpusd/internal/domain/search"
)

// mockSearcher implements Searcher for tests.
type mockSearcher struct {
	searchFn func(ctx context.Context, criteria domsearch.Criteria, limit int) (domsearch.Result, error)
}

func (m *mockSearcher) SearchWithLimit(ctx context.Context, criteria domsearch.Criteria, limit int) (domsearch.Result, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, criteria, limit)
	}
	return domsearch.Result{}, nil
}

func exportDocument(t *testing.T) domdoc.Document {
	t.Helper()
	meta := domdoc.Metadata{
		ClientProjectName: "Acme Corp",
		ModifiedDate:      time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	class := domdoc.Classification{
		Language:       "en",
		DocType:        "AGMT",
		Status:         "EXECUTED",
		FilenameCorpus: "2024-03-15_AGMT_Contract_EXECUTED.docx",
	}
	return domdoc.New("doc-1", "Contract.docx", meta, class, "content", time.Now())
}

func TestWriteCSV_ZeroHits(t *testing.T) {
	svc := New(&mockSearcher{}, 1000)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), &buf, domsearch.Criteria{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header-only output, got %d lines", len(lines))
	}
	want := "Corpus Filename,Original Filename,Client/Project,Doc Type,Status,Modified Date,Language"
	if lines[0] != want {
		t.Errorf("header = %q", lines[0])
	}
}

func TestWriteCSV_Rows(t *testing.T) {
	doc := exportDocument(t)
	svc := New(&mockSearcher{
		searchFn: func(_ context.Context, _ domsearch.Criteria, limit int) (domsearch.Result, error) {
			if limit != 1000 {
				t.Errorf("limit = %d", limit)
			}
			return domsearch.Result{Total: 1, Hits: []domdoc.Document{doc}}, nil
		},
	}, 1000)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), &buf, domsearch.Criteria{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	want := "2024-03-15_AGMT_Contract_EXECUTED.docx,Contract.docx,Acme Corp,AGMT,EXECUTED,2024-03-15T10:30:00Z,en"
	if lines[1] != want {
		t.Errorf("row:\n got %q\nwant %q", lines[1], want)
	}
}

func TestWriteCSV_MissingFieldsEmpty(t *testing.T) {
	// A document hydrated from a sparse hash renders blanks, not sentinels.
	doc := domdoc.New("doc-2", "", domdoc.Metadata{}, domdoc.Classification{}, "", time.Time{})
	svc := New(&mockSearcher{
		searchFn: func(context.Context, domsearch.Criteria, int) (domsearch.Result, error) {
			return domsearch.Result{Total: 1, Hits: []domdoc.Document{doc}}, nil
		},
	}, 1000)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), &buf, domsearch.Criteria{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != ",,,,,," {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteCSV_SearchError(t *testing.T) {
	svc := New(&mockSearcher{
		searchFn: func(context.Context, domsearch.Criteria, int) (domsearch.Result, error) {
			return domsearch.Result{}, errors.New("engine down")
		},
	}, 1000)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, domsearch.Criteria{})
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Error("nothing must be written when the search fails")
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	if got := Filename(now); got != "corpus_export_20240315.csv" {
		t.Errorf("filename = %q", got)
	}
}

func TestNew_DefaultLimit(t *testing.T) {
	svc := New(&mockSearcher{}, 0)
	if svc.Limit() != 1000 {
		t.Errorf("limit = %d", svc.Limit())
	}
}
