package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/corpus-works/corpusd/internal/domain"
	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
)

// buildHashFields flattens a domain document into the hash layout the FT
// index is declared over. Dates are stored as epoch milliseconds: the engine
// has no instant type, and NUMERIC fields support range filters and SORTBY.
func buildHashFields(doc *domdoc.Document) map[string]string {
	meta := doc.Metadata()
	class := doc.Classification()

	m := map[string]string{
		domain.FieldContent:           doc.Content(),
		domain.FieldFilenameOriginal:  doc.FilenameOriginal(),
		domain.FieldFilenameCorpus:    class.FilenameCorpus,
		domain.FieldClientProjectName: meta.ClientProjectName,
		domain.FieldCreatedDate:       strconv.FormatInt(meta.CreatedDate.UnixMilli(), 10),
		domain.FieldModifiedDate:      strconv.FormatInt(meta.ModifiedDate.UnixMilli(), 10),
		domain.FieldSourceHostname:    meta.SourceHostname,
		domain.FieldCreator:           meta.Creator,
		domain.FieldModifier:          meta.Modifier,
		domain.FieldLanguage:          class.Language,
		domain.FieldDocType:           class.DocType,
		domain.FieldStatus:            class.Status,
		domain.FieldIngestTimestamp:   doc.IngestTimestamp().Format(time.RFC3339),
	}
	if len(meta.Tags) > 0 {
		m[domain.FieldTags] = strings.Join(meta.Tags, ",")
	}
	return m
}

// parseHashFields hydrates a domain document from a flat hash map.
func parseHashFields(id string, m map[string]string) domdoc.Document {
	meta := domdoc.Metadata{
		ClientProjectName: m[domain.FieldClientProjectName],
		CreatedDate:       parseEpochMilli(m[domain.FieldCreatedDate]),
		ModifiedDate:      parseEpochMilli(m[domain.FieldModifiedDate]),
		SourceHostname:    m[domain.FieldSourceHostname],
		Creator:           m[domain.FieldCreator],
		Modifier:          m[domain.FieldModifier],
	}
	if tags := m[domain.FieldTags]; tags != "" {
		meta.Tags = strings.Split(tags, ",")
	}

	class := domdoc.Classification{
		Language:       m[domain.FieldLanguage],
		DocType:        m[domain.FieldDocType],
		Status:         m[domain.FieldStatus],
		FilenameCorpus: m[domain.FieldFilenameCorpus],
	}

	var ingestedAt time.Time
	if ts := m[domain.FieldIngestTimestamp]; ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			ingestedAt = parsed
		}
	}

	return domdoc.New(id, m[domain.FieldFilenameOriginal], meta, class, m[domain.FieldContent], ingestedAt)
}

func parseEpochMilli(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
