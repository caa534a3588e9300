package document

import (
	"testing"
	"time"

	"github.com/corpus-works/corpusd/internal/domain"
	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
)

func TestBuildHashFields(t *testing.T) {
	doc := testDocument(t)
	fields := buildHashFields(&doc)

	want := map[string]string{
		domain.FieldContent:           "This Agreement, executed this day",
		domain.FieldFilenameOriginal:  "Contract.docx",
		domain.FieldFilenameCorpus:    "2024-03-15_AGMT_Contract_EXECUTED.docx",
		domain.FieldClientProjectName: "Acme Corp",
		domain.FieldCreatedDate:       "1700000000000",
		domain.FieldModifiedDate:      "1710460800000",
		domain.FieldSourceHostname:    "fileserver-01",
		domain.FieldCreator:           "jdoe",
		domain.FieldModifier:          "asmith",
		domain.FieldLanguage:          "en",
		domain.FieldDocType:           "AGMT",
		domain.FieldStatus:            "EXECUTED",
		domain.FieldTags:              "legal,priority",
		domain.FieldIngestTimestamp:   "2024-03-16T08:00:00Z",
	}
	if len(fields) != len(want) {
		t.Errorf("got %d fields, want %d", len(fields), len(want))
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], v)
		}
	}
}

func TestBuildHashFields_NoTags(t *testing.T) {
	src := testDocument(t)
	meta := src.Metadata()
	meta.Tags = nil
	doc := domdoc.New(src.ID(), src.FilenameOriginal(), meta, src.Classification(),
		src.Content(), src.IngestTimestamp())

	fields := buildHashFields(&doc)
	if _, ok := fields[domain.FieldTags]; ok {
		t.Error("tags field must be absent when the document has no tags")
	}
}

func TestHashFieldsRoundTrip(t *testing.T) {
	doc := testDocument(t)
	got := parseHashFields(doc.ID(), buildHashFields(&doc))

	if got.ID() != doc.ID() {
		t.Errorf("id = %q", got.ID())
	}
	if got.FilenameOriginal() != doc.FilenameOriginal() {
		t.Errorf("filename_original = %q", got.FilenameOriginal())
	}
	if got.Content() != doc.Content() {
		t.Errorf("content = %q", got.Content())
	}
	if got.Classification() != doc.Classification() {
		t.Errorf("classification = %+v", got.Classification())
	}
	if !got.Metadata().ModifiedDate.Equal(doc.Metadata().ModifiedDate) {
		t.Errorf("modified_date = %v", got.Metadata().ModifiedDate)
	}
	if !got.Metadata().CreatedDate.Equal(doc.Metadata().CreatedDate) {
		t.Errorf("created_date = %v", got.Metadata().CreatedDate)
	}
	if !got.IngestTimestamp().Equal(doc.IngestTimestamp()) {
		t.Errorf("ingest_timestamp = %v", got.IngestTimestamp())
	}
	if len(got.Metadata().Tags) != 2 || got.Metadata().Tags[0] != "legal" {
		t.Errorf("tags = %v", got.Metadata().Tags)
	}
}

func TestParseHashFields_PartialMap(t *testing.T) {
	got := parseHashFields("doc-2", map[string]string{
		domain.FieldFilenameOriginal: "a.txt",
		domain.FieldDocType:          "MISC",
	})

	if got.ID() != "doc-2" {
		t.Errorf("id = %q", got.ID())
	}
	if !got.Metadata().ModifiedDate.IsZero() {
		t.Error("missing modified_date must parse to the zero instant")
	}
	if got.Classification().DocType != "MISC" {
		t.Errorf("doc_type = %q", got.Classification().DocType)
	}
	if got.Metadata().Tags != nil {
		t.Errorf("tags = %v", got.Metadata().Tags)
	}
}

func TestParseEpochMilli(t *testing.T) {
	if got := parseEpochMilli("1710460800000"); !got.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}
	if got := parseEpochMilli(""); !got.IsZero() {
		t.Errorf("empty input should parse to zero, got %v", got)
	}
	if got := parseEpochMilli("not-a-number"); !got.IsZero() {
		t.Errorf("garbage input should parse to zero, got %v", got)
	}
}
