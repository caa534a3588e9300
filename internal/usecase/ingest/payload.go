package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corpus-works/corpusd/internal/domain"
	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
)

// payload is the JSON body the agent submits in the multipart form.
// Timestamps arrive as epoch seconds straight from stat(2); conversion to
// instants happens here, at the boundary, so the classifier can stay pure.
type payload struct {
	Metadata payloadMetadata `json:"metadata"`
	Content  string          `json:"content"`
}

type payloadMetadata struct {
	FilenameFullPath  string   `json:"filename_full_path"`
	ClientProjectName string   `json:"client_project_name"`
	CreatedDate       float64  `json:"created_date"`
	ModifiedDate      float64  `json:"modified_date"`
	SourceHostname    string   `json:"source_hostname"`
	Creator           string   `json:"creator"`
	Modifier          string   `json:"modifier"`
	Tags              []string `json:"tags,omitempty"`
}

// parsePayload decodes and validates the raw submission. Any malformed or
// incomplete input maps to domain.ErrInvalidPayload; storage is never
// touched for a payload that fails here.
func parsePayload(raw []byte) (payload, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return payload{}, fmt.Errorf("%w: malformed JSON: %w", domain.ErrInvalidPayload, err)
	}
	if err := p.validate(); err != nil {
		return payload{}, fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
	}
	return p, nil
}

func (p payload) validate() error {
	m := p.Metadata
	switch {
	case m.FilenameFullPath == "":
		return fmt.Errorf("metadata.filename_full_path is required")
	case m.ClientProjectName == "":
		return fmt.Errorf("metadata.client_project_name is required")
	case m.CreatedDate <= 0:
		return fmt.Errorf("metadata.created_date is required")
	case m.ModifiedDate <= 0:
		return fmt.Errorf("metadata.modified_date is required")
	case m.SourceHostname == "":
		return fmt.Errorf("metadata.source_hostname is required")
	}
	// modified_date >= created_date is accepted as given, not enforced.
	return nil
}

// toMetadata converts the wire metadata into the domain form. creator and
// modifier fall back to the agent's not-available sentinel.
func (p payload) toMetadata() domdoc.Metadata {
	m := p.Metadata

	creator := m.Creator
	if creator == "" {
		creator = domdoc.NotAvailable
	}
	modifier := m.Modifier
	if modifier == "" {
		modifier = domdoc.NotAvailable
	}

	return domdoc.Metadata{
		FilenameFullPath:  m.FilenameFullPath,
		ClientProjectName: m.ClientProjectName,
		CreatedDate:       epochToTime(m.CreatedDate),
		ModifiedDate:      epochToTime(m.ModifiedDate),
		SourceHostname:    m.SourceHostname,
		Creator:           creator,
		Modifier:          modifier,
		Tags:              m.Tags,
	}
}

func epochToTime(sec float64) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}
