// Package schema declares the documents index layout and provisions it at
// process start.
package schema

import (
	"github.com/corpus-works/corpusd/internal/db"
	"github.com/corpus-works/corpusd/internal/domain"
)

// IndexDefinition returns the fixed field layout of the documents index.
// Versionless and declarative: exact-match categorical fields are TAG,
// full-text fields are TEXT (standard tokenizer), temporal fields are
// NUMERIC epoch milliseconds. filename_original and client_project_name are
// indexed a second time under TEXT aliases so free text scores against them.
func IndexDefinition() *db.IndexDefinition {
	tag := func(name string) db.IndexField {
		return db.IndexField{Name: name, Type: db.IndexFieldTag, TagCaseSensitive: true}
	}

	return &db.IndexDefinition{
		Name:        domain.IndexName(),
		StorageType: db.StorageHash,
		Prefixes:    []string{domain.KeyPrefix + domain.CollectionName + ":"},
		Fields: []db.IndexField{
			tag(domain.FieldFilenameOriginal),
			tag(domain.FieldFilenameCorpus),
			tag(domain.FieldClientProjectName),
			tag(domain.FieldSourceHostname),
			tag(domain.FieldCreator),
			tag(domain.FieldModifier),
			tag(domain.FieldLanguage),
			tag(domain.FieldDocType),
			tag(domain.FieldStatus),
			{Name: domain.FieldTags, Type: db.IndexFieldTag, TagSeparator: ","},
			{Name: domain.FieldContent, Type: db.IndexFieldText},
			{Name: domain.FieldFilenameOriginal, Alias: domain.AliasFilenameText, Type: db.IndexFieldText},
			{Name: domain.FieldClientProjectName, Alias: domain.AliasProjectText, Type: db.IndexFieldText},
			{Name: domain.FieldCreatedDate, Type: db.IndexFieldNumeric},
			{Name: domain.FieldModifiedDate, Type: db.IndexFieldNumeric, Sortable: true},
		},
	}
}
