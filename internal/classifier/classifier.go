// Package classifier derives document type, status, language, and the
// canonical corpus filename from raw content and filesystem metadata. Every
// function here is pure; absence of signal degrades to the default category
// instead of failing.
package classifier

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/corpus-works/corpusd/internal/domain/document"
)

// Document type categories, in classification priority order. MEMO is a
// valid stored category but no content rule produces it.
const (
	DocTypeAgreement = "AGMT"
	DocTypeLetter    = "LTR"
	DocTypeMemo      = "MEMO"
	DocTypeMisc      = "MISC"
)

// Document status categories, in classification priority order.
const (
	StatusDraft     = "DRAFT"
	StatusExecuted  = "EXECUTED"
	StatusProcessed = "PROCESSED"
)

// LanguageUnknown is the fallback when detection finds no reliable signal.
const LanguageUnknown = "unknown"

// languageSampleSize bounds detection to the head of the content. Whole
// documents add latency without changing the verdict.
const languageSampleSize = 500

// Classify derives the full classification for a document. It never fails:
// undetectable signal falls back to MISC / PROCESSED / unknown.
func Classify(content string, meta document.Metadata, originalFilename string) document.Classification {
	docType := ClassifyDocType(content)
	status := ClassifyStatus(content)
	return document.Classification{
		Language:       DetectLanguage(content),
		DocType:        docType,
		Status:         status,
		FilenameCorpus: CorpusFilename(meta.ModifiedDate, docType, status, originalFilename),
	}
}

// DetectLanguage returns the ISO 639-1 code of the content's language, or
// "unknown" when the sample is empty or the detector is not confident.
func DetectLanguage(content string) string {
	sample := strings.TrimSpace(content)
	if sample == "" {
		return LanguageUnknown
	}
	if runes := []rune(sample); len(runes) > languageSampleSize {
		sample = string(runes[:languageSampleSize])
	}

	info := whatlanggo.Detect(sample)
	if !info.IsReliable() {
		return LanguageUnknown
	}
	iso := whatlanggo.LangToStringShort(info.Lang)
	if iso == "" {
		return LanguageUnknown
	}
	return iso
}

// ClassifyDocType maps content to a document type by case-insensitive
// substring match in fixed priority order. First match wins.
func ClassifyDocType(content string) string {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "agreement") || strings.Contains(lower, "contract"):
		return DocTypeAgreement
	case strings.Contains(lower, "letter"):
		return DocTypeLetter
	default:
		return DocTypeMisc
	}
}

// ClassifyStatus maps content to a status, independent of the document type,
// with the same priority-ordered substring policy.
func ClassifyStatus(content string) string {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "draft") || strings.Contains(lower, "for review"):
		return StatusDraft
	case strings.Contains(lower, "executed") || strings.Contains(lower, "signed"):
		return StatusExecuted
	default:
		return StatusProcessed
	}
}
