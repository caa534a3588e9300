package classifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corpus-works/corpusd/internal/domain/document"
)

func TestClassifyDocType(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"agreement keyword", "This Agreement is entered into by the parties", DocTypeAgreement},
		{"contract keyword", "the CONTRACT between buyer and seller", DocTypeAgreement},
		{"letter keyword", "Dear Sir, this letter confirms our call", DocTypeLetter},
		{"agreement wins over letter", "cover letter attached to the agreement", DocTypeAgreement},
		{"case insensitive", "AGREEMENT", DocTypeAgreement},
		{"no keyword", "quarterly planning notes", DocTypeMisc},
		{"empty content", "", DocTypeMisc},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyDocType(tc.content))
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"draft keyword", "first draft of the proposal", StatusDraft},
		{"for review phrase", "circulated for review internally", StatusDraft},
		{"executed keyword", "executed this day of March", StatusExecuted},
		{"signed keyword", "signed by both parties", StatusExecuted},
		{"draft wins over executed", "draft version of the executed copy", StatusDraft},
		{"no keyword", "meeting summary", StatusProcessed},
		{"empty content", "", StatusProcessed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyStatus(tc.content))
		})
	}
}

func TestClassifyStatusIndependentOfDocType(t *testing.T) {
	// Status matching runs over the full content regardless of the doc type
	// verdict. An agreement can still be a draft.
	content := "Draft Agreement between Acme and Initech"
	assert.Equal(t, DocTypeAgreement, ClassifyDocType(content))
	assert.Equal(t, StatusDraft, ClassifyStatus(content))
}

func TestDetectLanguage(t *testing.T) {
	english := "This agreement sets out the terms and conditions under which " +
		"the service provider will deliver consulting services to the client, " +
		"including the scope of work, payment schedule, and termination rights " +
		"of either party upon written notice."

	t.Run("english content", func(t *testing.T) {
		assert.Equal(t, "en", DetectLanguage(english))
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Equal(t, LanguageUnknown, DetectLanguage(""))
	})

	t.Run("whitespace only", func(t *testing.T) {
		assert.Equal(t, LanguageUnknown, DetectLanguage("   \n\t  "))
	})

	t.Run("long content sampled", func(t *testing.T) {
		// Only the head is examined; a huge tail must not change the verdict.
		long := strings.Repeat(english+" ", 2000)
		assert.Equal(t, "en", DetectLanguage(long))
	})
}

func TestClassify(t *testing.T) {
	meta := document.Metadata{
		ModifiedDate: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	content := "This Agreement, executed this day of March, between the parties " +
		"named below, sets forth the mutual obligations of the signatories."

	class := Classify(content, meta, "Final_Contract_v2_2023-01-01.docx")

	assert.Equal(t, DocTypeAgreement, class.DocType)
	assert.Equal(t, StatusExecuted, class.Status)
	assert.Equal(t, "2024-03-15_AGMT_Contract_EXECUTED.docx", class.FilenameCorpus)
}

func TestClassifyNeverFails(t *testing.T) {
	class := Classify("", document.Metadata{}, "x.bin")

	assert.Equal(t, LanguageUnknown, class.Language)
	assert.Equal(t, DocTypeMisc, class.DocType)
	assert.Equal(t, StatusProcessed, class.Status)
	assert.NotEmpty(t, class.FilenameCorpus)
}
