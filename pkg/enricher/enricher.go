// Package enricher turns one cleaned document into an EnrichedRecord.
package enricher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/dtnitsch/corpus-enricher/pkg/analytics"
	"github.com/dtnitsch/corpus-enricher/pkg/detector"
	"github.com/dtnitsch/corpus-enricher/pkg/keywords"
	"github.com/dtnitsch/corpus-enricher/pkg/language"
	"github.com/dtnitsch/corpus-enricher/pkg/nlp"
	"github.com/dtnitsch/corpus-enricher/pkg/summarizer"
)

// LanguageDetector returns an ISO 639-1 code or "".
type LanguageDetector interface {
	Detect(text string) string
}

// EntityExtractor returns deduplicated entities; never nil.
type EntityExtractor interface {
	Extract(text, lang string) []models.NamedEntity
}

// KeywordExtractor returns ranked keywords; never nil.
type KeywordExtractor interface {
	Extract(text, lang string) []string
}

// Input is a document after boilerplate filtering and duplicate elimination.
type Input struct {
	RelPath  string
	Document *models.RawDocument
	Cleaned  []string
}

// Enricher runs the per-document enrichment steps.
type Enricher struct {
	Detector   LanguageDetector
	Entities   EntityExtractor
	Keywords   KeywordExtractor
	Summarizer *summarizer.Summarizer
	Domain     string
	Source     string
}

// NewFromConfig wires the default capabilities for cfg.
func NewFromConfig(cfg models.Config, logger *slog.Logger) (*Enricher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	det, err := language.NewDetector(cfg.Languages, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build language detector: %w", err)
	}

	entities := nlp.NewEntityService(cfg.NLPLanguages, logger)
	segmenters := nlp.NewSegmenterService(cfg.Languages, logger)
	kw := keywords.NewService(cfg.Languages, cfg.FallbackLanguage, keywords.Options{
		MaxNgram:   cfg.KeywordMaxNgram,
		Top:        cfg.TopKeywords,
		DedupLimit: cfg.KeywordDedupLimit,
	}, logger)

	summ := summarizer.New(
		summarizer.BulletStrategy{Markers: cfg.BulletMarkers, Max: cfg.SummaryBullets},
		summarizer.SegmenterStrategy{Source: func(lang string) (summarizer.Segmenter, bool) {
			seg, ok := segmenters.Segmenter(lang)
			if !ok {
				return nil, false
			}
			return seg, true
		}},
		summarizer.NaiveStrategy{},
	)

	return &Enricher{
		Detector:   det,
		Entities:   entities,
		Keywords:   kw,
		Summarizer: summ,
		Domain:     cfg.Domain,
		Source:     cfg.Source,
	}, nil
}

// Enrich assembles the record for in. It returns ctx's error if ctx is done
// before all steps have run.
func (e *Enricher) Enrich(ctx context.Context, in Input) (*models.EnrichedRecord, error) {
	if in.Document == nil {
		return nil, fmt.Errorf("enrich %s: no document", in.RelPath)
	}
	doc := in.Document

	rec := models.NewEnrichedRecord()
	rec.DocID = doc.DocID
	rec.Filename = doc.Filename
	rec.Domain = e.Domain
	rec.Source = e.Source
	rec.Date, rec.Year, rec.Month = detector.PathDate(in.RelPath)

	if doc.Paragraphs != nil {
		rec.ParagraphsOriginal = doc.Paragraphs
	}
	if in.Cleaned != nil {
		rec.ParagraphsCleaned = in.Cleaned
	}
	rec.MainContent = strings.Join(rec.ParagraphsCleaned, "\n")
	rec.TextStats = analytics.ComputeTextStats(rec.MainContent, rec.ParagraphsCleaned)
	rec.SemanticChunkHints = analytics.ChunkHints(rec.ParagraphsCleaned)

	text := rec.MainContent

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec.Language = e.Detector.Detect(text)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec.NamedEntities = nonNil(e.Entities.Extract(text, rec.Language))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec.Keywords = nonNil(e.Keywords.Extract(text, rec.Language))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec.Summary = e.Summarizer.Summarize(text, rec.Language)

	return rec, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
