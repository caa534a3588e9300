package classifier

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// The canonical filename convention is
// {date}_{doc_type}_{description}_{status}{ext}, where the description is the
// original base name run through an ordered cleaning pipeline. Each step is a
// standalone pure transform.

var (
	strippedTokens = regexp.MustCompile(`(?i)final|draft|v\d+|\d{4}-\d{2}-\d{2}`)
	nonAlnum       = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// StripTokens removes noise tokens from a base filename: the literals
// "final" and "draft" (any case), version markers like v2, and embedded
// YYYY-MM-DD dates.
func StripTokens(s string) string {
	return strippedTokens.ReplaceAllString(s, "")
}

// StripNonAlphanumeric removes every character outside [A-Za-z0-9 ] and trims
// surrounding whitespace.
func StripNonAlphanumeric(s string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(s, ""))
}

// CollapseWhitespace replaces each whitespace run with a single underscore.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, "_")
}

// CleanDescription runs the full cleaning pipeline over a base filename.
func CleanDescription(base string) string {
	return CollapseWhitespace(StripNonAlphanumeric(StripTokens(base)))
}

// CorpusFilename synthesizes the canonical filename. Deterministic and
// content-independent: only the modification date, classification outputs,
// and the original base name feed into it. The original extension is kept.
// When cleaning empties the description the segment is dropped entirely
// rather than leaving a doubled separator.
func CorpusFilename(modifiedDate time.Time, docType, status, originalFilename string) string {
	date := modifiedDate.UTC().Format("2006-01-02")
	ext := filepath.Ext(originalFilename)
	base := strings.TrimSuffix(filepath.Base(originalFilename), ext)

	parts := []string{date, docType}
	if desc := CleanDescription(base); desc != "" {
		parts = append(parts, desc)
	}
	parts = append(parts, status)

	return strings.Join(parts, "_") + ext
}
