// Package chi exposes the corpus API over HTTP.
package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/corpus-works/corpusd/internal/domain"
	logpkg "github.com/corpus-works/corpusd/internal/logger"
	exportuc "github.com/corpus-works/corpusd/internal/usecase/export"
	healthuc "github.com/corpus-works/corpusd/internal/usecase/health"
	ingestuc "github.com/corpus-works/corpusd/internal/usecase/ingest"
	searchuc "github.com/corpus-works/corpusd/internal/usecase/search"
)

// maxUploadSize bounds the multipart form kept in memory per ingestion.
const maxUploadSize = 32 << 20 // 32MB

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires HTTP handlers to the use case services.
type Server struct {
	ingest        *ingestuc.Service
	search        *searchuc.Service
	export        *exportuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	ingest *ingestuc.Service,
	search *searchuc.Service,
	export *exportuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		ingest: ingest,
		search: search,
		export: export,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidPayload, http.StatusBadRequest, codeInvalidPayload),
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, codeDocumentNotFound),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1/documents", func(r chi.Router) {
		r.Post("/ingest", s.IngestDocument)
		r.Post("/search", s.SearchDocuments)
		r.Post("/export/csv", s.ExportCSV)
		r.Get("/recent", s.RecentDocuments)
		r.Get("/{documentID}", s.GetDocumentByID)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// IngestDocument handles POST /api/v1/documents/ingest. The agent submits a
// multipart form: a json_payload field with metadata+content, plus the
// original binary file.
func (s *Server) IngestDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	rawPayload := r.FormValue("json_payload")
	if rawPayload == "" {
		writeError(w, http.StatusBadRequest, codeInvalidPayload, "json_payload form field is required")
		return
	}

	file, header, err := r.FormFile("original_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "original_file form file is required")
		return
	}
	defer func() { _ = file.Close() }()

	original, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "failed to read original_file: "+err.Error())
		return
	}

	receipt, err := s.ingest.Ingest(r.Context(), []byte(rawPayload), header.Filename, original)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ingestResponse{
		ID:             receipt.DocumentID,
		FilenameCorpus: receipt.FilenameCorpus,
	})
}

// SearchDocuments handles POST /api/v1/documents/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.search.Search(r.Context(), req.toCriteria())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToResponse(result))
}

// ExportCSV handles POST /api/v1/documents/export/csv. Same criteria shape
// as search; the response is a CSV attachment.
func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	// Render into memory before touching response headers so an engine
	// failure becomes an error status instead of an empty 200 attachment.
	// The export result cap keeps the buffer bounded.
	var buf bytes.Buffer
	if err := s.export.WriteCSV(r.Context(), &buf, req.toCriteria()); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", exportuc.Filename(time.Now())))
	_, _ = w.Write(buf.Bytes())
}

// RecentDocuments handles GET /api/v1/documents/recent.
func (s *Server) RecentDocuments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	docs, err := s.search.Recent(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	hits := make([]documentResponse, len(docs))
	for i := range docs {
		hits[i] = documentToResponse(&docs[i])
	}
	writeJSON(w, http.StatusOK, hits)
}

// GetDocumentByID handles GET /api/v1/documents/{documentID}.
func (s *Server) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "documentID")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "document id is required")
		return
	}

	doc, err := s.search.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, documentToResponse(&doc))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// handleDomainError maps sentinel errors to client responses. Unmatched
// errors become an opaque 500 with the cause logged for operators, never
// echoed to the caller.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err, safeDomainMessage(err)) {
			return
		}
	}

	logpkg.FromContext(r.Context()).Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidPayload) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrStorageUnavailable,
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}
