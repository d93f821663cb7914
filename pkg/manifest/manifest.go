// Package manifest summarizes an enrichment run: what was read, what was
// written, what failed and why, and the keywords that dominate the corpus.
package manifest

// RunManifest is the YAML document written next to a run's output.
type RunManifest struct {
	RunID              string            `yaml:"run_id"`
	GeneratedAt        string            `yaml:"generated_at"`
	InputDir           string            `yaml:"input_dir"`
	OutputDir          string            `yaml:"output_dir"`
	Threshold          int               `yaml:"threshold"`
	FrequencyStore     string            `yaml:"frequency_store"`
	TotalDocuments     int               `yaml:"total_documents"`
	Written            int               `yaml:"written"`
	Failed             int               `yaml:"failed"`
	DistinctParagraphs int               `yaml:"distinct_paragraphs"`
	ElapsedSeconds     float64           `yaml:"elapsed_seconds"`
	AggregateKeywords  []string          `yaml:"aggregate_keywords"`
	Results            []DocumentSummary `yaml:"results"`
}

// DocumentSummary is one input document's outcome.
type DocumentSummary struct {
	Path               string   `yaml:"path"`
	DocID              string   `yaml:"doc_id,omitempty"`
	Status             string   `yaml:"status"` // "written" or "error"
	OutputPath         string   `yaml:"output_path,omitempty"`
	Language           string   `yaml:"language,omitempty"`
	ErrorType          string   `yaml:"error_type,omitempty"`
	ErrorMessage       string   `yaml:"error_message,omitempty"`
	ParagraphsOriginal int      `yaml:"paragraphs_original"`
	ParagraphsCleaned  int      `yaml:"paragraphs_cleaned"`
	TopKeywords        []string `yaml:"top_keywords,omitempty"`
}
