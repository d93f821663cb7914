package models

// SchemaVersion is stamped on every EnrichedRecord. Bump it on any field change.
const SchemaVersion = "1.0"

// ChunkHintParagraphBoundaries is the only semantic chunk hint emitted today.
const ChunkHintParagraphBoundaries = "paragraph_boundaries"

// NamedEntity is a surface string with its entity label (PERSON, ORG, ...).
type NamedEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// TextStats describes the final cleaned text of a record.
type TextStats struct {
	CharCount      int `json:"char_count"`
	WordCount      int `json:"word_count"`
	ParagraphCount int `json:"paragraph_count"`
}

// ChunkHint is informational input for the later chunking stage.
type ChunkHint struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// EnrichedRecord is the per-document output unit. Field order here is the
// serialized order; slices are always non-nil so they encode as [].
type EnrichedRecord struct {
	SchemaVersion string `json:"schema_version"`

	DocID    string `json:"doc_id"`
	Filename string `json:"filename"`
	Domain   string `json:"domain"`
	Language string `json:"language"` // ISO-639-1 or "" if undetected
	Title    string `json:"title"`

	Date   string `json:"date"` // YYYY-MM-01 or ""
	Year   *int   `json:"year"`
	Month  *int   `json:"month"`
	Source string `json:"source"`

	MainContent        string   `json:"main_content"`
	ParagraphsOriginal []string `json:"paragraphs_original"`
	ParagraphsCleaned  []string `json:"paragraphs_cleaned"`

	NamedEntities []NamedEntity `json:"named_entities"`
	Keywords      []string      `json:"keywords"`
	Summary       string        `json:"summary"`

	TextStats          TextStats   `json:"text_stats"`
	SemanticChunkHints []ChunkHint `json:"semantic_chunk_hints"`

	// Reserved for the embedding stage; always empty here.
	EmbeddingVector []float64 `json:"embedding_vector"`
	DocEmbedding    []float64 `json:"doc_embedding"`
}

// NewEnrichedRecord returns a record with every sequence initialized to empty.
func NewEnrichedRecord() *EnrichedRecord {
	return &EnrichedRecord{
		SchemaVersion:      SchemaVersion,
		ParagraphsOriginal: []string{},
		ParagraphsCleaned:  []string{},
		NamedEntities:      []NamedEntity{},
		Keywords:           []string{},
		SemanticChunkHints: []ChunkHint{},
		EmbeddingVector:    []float64{},
		DocEmbedding:       []float64{},
	}
}

// HasContent reports whether any paragraph survived cleaning.
func (r *EnrichedRecord) HasContent() bool {
	return len(r.ParagraphsCleaned) > 0
}
