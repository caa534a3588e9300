package chi

import (
	"time"

	domdoc "github.com/corpus-works/corpusd/internal/domain/document"
	domsearch "github.com/corpus-works/corpusd/internal/domain/search"
)

// Error codes returned in errorResponse.Code.
const (
	codeBadRequest       = "bad_request"
	codeInvalidPayload   = "invalid_payload"
	codeDocumentNotFound = "document_not_found"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ingestResponse struct {
	ID             string `json:"id"`
	FilenameCorpus string `json:"filename_corpus"`
}

type searchRequest struct {
	Query         string     `json:"query,omitempty"`
	ClientProject string     `json:"client_project,omitempty"`
	DocType       string     `json:"doc_type,omitempty"`
	DateFrom      *time.Time `json:"date_from,omitempty"`
	DateTo        *time.Time `json:"date_to,omitempty"`
}

func (r searchRequest) toCriteria() domsearch.Criteria {
	return domsearch.Criteria{
		Query:         r.Query,
		ClientProject: r.ClientProject,
		DocType:       r.DocType,
		DateFrom:      r.DateFrom,
		DateTo:        r.DateTo,
	}
}

type searchResponse struct {
	Total int                `json:"total"`
	Hits  []documentResponse `json:"hits"`
}

type documentResponse struct {
	ID                string     `json:"id"`
	FilenameOriginal  string     `json:"filename_original"`
	FilenameCorpus    string     `json:"filename_corpus"`
	ClientProjectName string     `json:"client_project_name"`
	CreatedDate       *time.Time `json:"created_date,omitempty"`
	ModifiedDate      *time.Time `json:"modified_date,omitempty"`
	SourceHostname    string     `json:"source_hostname"`
	Creator           string     `json:"creator"`
	Modifier          string     `json:"modifier"`
	Language          string     `json:"language"`
	DocType           string     `json:"doc_type"`
	Status            string     `json:"status"`
	Tags              []string   `json:"tags,omitempty"`
	Content           string     `json:"content"`
	IngestTimestamp   *time.Time `json:"ingest_timestamp,omitempty"`
}

func documentToResponse(doc *domdoc.Document) documentResponse {
	meta := doc.Metadata()
	class := doc.Classification()

	resp := documentResponse{
		ID:                doc.ID(),
		FilenameOriginal:  doc.FilenameOriginal(),
		FilenameCorpus:    class.FilenameCorpus,
		ClientProjectName: meta.ClientProjectName,
		SourceHostname:    meta.SourceHostname,
		Creator:           meta.Creator,
		Modifier:          meta.Modifier,
		Language:          class.Language,
		DocType:           class.DocType,
		Status:            class.Status,
		Tags:              meta.Tags,
		Content:           doc.Content(),
	}

	if !meta.CreatedDate.IsZero() {
		t := meta.CreatedDate.UTC()
		resp.CreatedDate = &t
	}
	if !meta.ModifiedDate.IsZero() {
		t := meta.ModifiedDate.UTC()
		resp.ModifiedDate = &t
	}
	if !doc.IngestTimestamp().IsZero() {
		t := doc.IngestTimestamp()
		resp.IngestTimestamp = &t
	}

	return resp
}

func searchResultToResponse(result domsearch.Result) searchResponse {
	hits := make([]documentResponse, len(result.Hits))
	for i := range result.Hits {
		hits[i] = documentToResponse(&result.Hits[i])
	}
	return searchResponse{Total: result.Total, Hits: hits}
}
