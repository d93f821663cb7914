package manifest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/corpus-enricher/pkg/mapreduce"
	"github.com/dtnitsch/corpus-enricher/pkg/storage"
)

// AggregateKeywordLimit caps the corpus-wide keyword list.
const AggregateKeywordLimit = 25

// Error types recorded for failed documents.
const (
	ErrorTypeRead    = "read_error"
	ErrorTypeDedup   = "dedup_error"
	ErrorTypeEnrich  = "enrich_error"
	ErrorTypeTimeout = "timeout"
	ErrorTypeMarshal = "marshal_error"
	ErrorTypeWrite   = "write_error"
)

// DocumentResult is the outcome of processing one input document.
type DocumentResult struct {
	Path               string
	DocID              string
	OutputPath         string
	Language           string
	Error              error
	ErrorType          string
	ParagraphsOriginal int
	ParagraphsCleaned  int
	Keywords           []string
}

// RunInfo describes the run as a whole.
type RunInfo struct {
	InputDir           string
	OutputDir          string
	Threshold          int
	FrequencyStore     string
	DistinctParagraphs int
	Elapsed            time.Duration
}

// Build assembles the manifest for results. The run id is random; everything
// else is derived from the arguments.
func Build(info RunInfo, results []DocumentResult, now time.Time) RunManifest {
	m := RunManifest{
		RunID:              uuid.NewString(),
		GeneratedAt:        now.UTC().Format(time.RFC3339),
		InputDir:           info.InputDir,
		OutputDir:          info.OutputDir,
		Threshold:          info.Threshold,
		FrequencyStore:     info.FrequencyStore,
		TotalDocuments:     len(results),
		DistinctParagraphs: info.DistinctParagraphs,
		ElapsedSeconds:     info.Elapsed.Seconds(),
		AggregateKeywords:  []string{},
		Results:            make([]DocumentSummary, 0, len(results)),
	}

	var perDocument []map[string]int
	for _, result := range results {
		summary := DocumentSummary{
			Path:               result.Path,
			DocID:              result.DocID,
			ParagraphsOriginal: result.ParagraphsOriginal,
			ParagraphsCleaned:  result.ParagraphsCleaned,
		}

		if result.Error != nil {
			m.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			m.Written++
			summary.Status = "written"
			summary.OutputPath = result.OutputPath
			summary.Language = result.Language
			summary.TopKeywords = result.Keywords
			perDocument = append(perDocument, mapreduce.Map(result.Keywords))
		}

		m.Results = append(m.Results, summary)
	}

	m.AggregateKeywords = mapreduce.TopKeywords(mapreduce.Reduce(perDocument), AggregateKeywordLimit)
	return m
}

// Write saves m as YAML at path.
func Write(path string, m RunManifest, s *storage.Storage) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}
