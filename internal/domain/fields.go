package domain

// KeyPrefix namespaces all engine keys owned by corpusd.
const KeyPrefix = "corpusd:"

// CollectionName is the single logical collection holding stored documents.
const CollectionName = "documents"

// Hash field names of a stored document. The index schema and all query
// building refer to these; they must stay in sync with the FT.CREATE layout.
const (
	FieldContent           = "content"
	FieldFilenameOriginal  = "filename_original"
	FieldFilenameCorpus    = "filename_corpus"
	FieldClientProjectName = "client_project_name"
	FieldCreatedDate       = "created_date"
	FieldModifiedDate      = "modified_date"
	FieldSourceHostname    = "source_hostname"
	FieldCreator           = "creator"
	FieldModifier          = "modifier"
	FieldLanguage          = "language"
	FieldDocType           = "doc_type"
	FieldStatus            = "status"
	FieldTags              = "tags"
	FieldIngestTimestamp   = "ingest_timestamp"
)

// Text-search aliases. filename_original and client_project_name are indexed
// twice: once as TAG for exact filters, once as TEXT under these aliases so
// free text can score against them.
const (
	AliasFilenameText = "filename_text"
	AliasProjectText  = "project_text"
)

// DocumentKey builds the engine key for a document id.
func DocumentKey(id string) string {
	return KeyPrefix + CollectionName + ":" + id
}

// IndexName is the FT index over the documents collection.
func IndexName() string {
	return KeyPrefix + CollectionName + ":idx"
}
