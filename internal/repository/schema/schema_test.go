package schema

import (
	"testing"

	"github.com/corpus-works/corpusd/internal/db"
	"github.com/corpus-works/corpusd/internal/domain"
)

func TestIndexDefinition_Valid(t *testing.T) {
	def := IndexDefinition()
	if err := def.Validate(); err != nil {
		t.Fatalf("definition must validate: %v", err)
	}
	if def.StorageType != db.StorageHash {
		t.Errorf("storage type = %q", def.StorageType)
	}
	if len(def.Prefixes) != 1 || def.Prefixes[0] != "corpusd:documents:" {
		t.Errorf("prefixes = %v", def.Prefixes)
	}
}

func TestIndexDefinition_FieldLayout(t *testing.T) {
	def := IndexDefinition()

	byKey := make(map[string]db.IndexField)
	for _, f := range def.Fields {
		key := f.Name
		if f.Alias != "" {
			key = f.Alias
		}
		byKey[key] = f
	}

	// Categorical fields are exact-match TAG.
	for _, name := range []string{
		domain.FieldClientProjectName,
		domain.FieldDocType,
		domain.FieldStatus,
		domain.FieldLanguage,
	} {
		f, ok := byKey[name]
		if !ok {
			t.Errorf("missing field %q", name)
			continue
		}
		if f.Type != db.IndexFieldTag {
			t.Errorf("%q must be TAG", name)
		}
	}

	if f := byKey[domain.FieldContent]; f.Type != db.IndexFieldText {
		t.Error("content must be TEXT")
	}

	// filename_original and client_project_name are indexed twice: TAG for
	// filters plus a TEXT alias for free-text scoring.
	if f := byKey[domain.AliasFilenameText]; f.Name != domain.FieldFilenameOriginal || f.Type != db.IndexFieldText {
		t.Errorf("filename_text alias = %+v", f)
	}
	if f := byKey[domain.AliasProjectText]; f.Name != domain.FieldClientProjectName || f.Type != db.IndexFieldText {
		t.Errorf("project_text alias = %+v", f)
	}

	if f := byKey[domain.FieldModifiedDate]; f.Type != db.IndexFieldNumeric || !f.Sortable {
		t.Error("modified_date must be NUMERIC SORTABLE")
	}
	if f := byKey[domain.FieldCreatedDate]; f.Type != db.IndexFieldNumeric {
		t.Error("created_date must be NUMERIC")
	}
	if f := byKey[domain.FieldTags]; f.TagSeparator != "," {
		t.Error("tags must split on comma")
	}
}
