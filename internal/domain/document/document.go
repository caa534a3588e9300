// Package document holds the stored-document aggregate and the metadata the
// ingestion agent reports alongside each file.
package document

import (
	"time"
)

// NotAvailable is the sentinel the agent sends when a filesystem attribute
// (creator, modifier) cannot be determined.
const NotAvailable = "N/A"

// Metadata carries the filesystem attributes of the source file as reported
// by the upstream agent, converted to instants at the ingestion boundary.
type Metadata struct {
	FilenameFullPath  string
	ClientProjectName string
	CreatedDate       time.Time
	ModifiedDate      time.Time
	SourceHostname    string
	Creator           string
	Modifier          string
	Tags              []string
}

// Classification is the derived document categorization. It is computed once
// at ingest time and never re-derived after storage.
type Classification struct {
	Language       string
	DocType        string
	Status         string
	FilenameCorpus string
}

// Document is a classified, stored document record. Create-once: the index
// owns it after creation and no in-place mutation is exposed.
type Document struct {
	id              string
	filenameOrig    string
	meta            Metadata
	class           Classification
	content         string
	ingestTimestamp time.Time
}

// New composes a document from ingestion inputs.
func New(id, filenameOriginal string, meta Metadata, class Classification, content string, ingestedAt time.Time) Document {
	return Document{
		id:              id,
		filenameOrig:    filenameOriginal,
		meta:            meta,
		class:           class,
		content:         content,
		ingestTimestamp: ingestedAt.UTC(),
	}
}

// ID returns the generated document identifier.
func (d *Document) ID() string { return d.id }

// FilenameOriginal returns the upload-time filename.
func (d *Document) FilenameOriginal() string { return d.filenameOrig }

// Metadata returns the filesystem metadata.
func (d *Document) Metadata() Metadata { return d.meta }

// Classification returns the derived categorization.
func (d *Document) Classification() Classification { return d.class }

// Content returns the extracted plain text.
func (d *Document) Content() string { return d.content }

// IngestTimestamp returns the UTC instant the document was ingested.
func (d *Document) IngestTimestamp() time.Time { return d.ingestTimestamp }
