package domain

import "errors"

var (
	// ErrInvalidPayload signals a malformed ingestion payload.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrStorageUnavailable signals that the search engine could not be
	// reached within the startup retry budget.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
