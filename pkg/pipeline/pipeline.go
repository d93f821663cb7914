// Package pipeline drives the two-pass enrichment of a directory tree of raw
// documents into a mirrored tree of enriched records.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/dtnitsch/corpus-enricher/pkg/boilerplate"
	"github.com/dtnitsch/corpus-enricher/pkg/db"
	"github.com/dtnitsch/corpus-enricher/pkg/dedup"
	"github.com/dtnitsch/corpus-enricher/pkg/enricher"
	"github.com/dtnitsch/corpus-enricher/pkg/manifest"
	"github.com/dtnitsch/corpus-enricher/pkg/mapreduce"
	"github.com/dtnitsch/corpus-enricher/pkg/storage"
)

// OutputExtension is the extension of every written record.
const OutputExtension = ".json"

// Enricher builds a record from a cleaned document.
type Enricher interface {
	Enrich(ctx context.Context, in enricher.Input) (*models.EnrichedRecord, error)
}

// Stats summarizes a run.
type Stats struct {
	Discovered         int
	Written            int
	Failed             int
	DistinctParagraphs int
	Elapsed            time.Duration
	Results            []manifest.DocumentResult
}

// Driver owns the frequency table and capabilities for one run.
type Driver struct {
	cfg      models.Config
	filter   *boilerplate.Filter
	enricher Enricher
	storage  *storage.Storage
	logger   *slog.Logger
}

// NewDriver returns a driver for cfg, which must already be validated.
func NewDriver(cfg models.Config, filter *boilerplate.Filter, e Enricher, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		cfg:      cfg,
		filter:   filter,
		enricher: e,
		storage:  &storage.Storage{},
		logger:   logger,
	}
}

// document is a raw document retained between the two passes.
type document struct {
	relPath  string
	raw      *models.RawDocument
	filtered []string
}

// openTable returns the configured frequency table.
func (d *Driver) openTable() (dedup.Table, error) {
	if d.cfg.FrequencyStore == models.FrequencyStoreSQLite {
		return db.OpenSpill(d.cfg.SpillDir)
	}
	return dedup.NewMemoryTable(), nil
}

// Run processes every document under inputDir. Per-document failures are
// logged and recorded in the returned stats; only setup failures, frequency
// table failures and cancellation of ctx end the run early.
func (d *Driver) Run(ctx context.Context, inputDir, outputDir string) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := storage.DiscoverFiles(inputDir, d.cfg.InputExtension)
	if err != nil {
		return stats, err
	}
	stats.Discovered = len(files)
	d.logger.Info("Discovered documents", "input", inputDir, "count", len(files))

	table, err := d.openTable()
	if err != nil {
		return stats, fmt.Errorf("failed to open frequency table: %w", err)
	}
	defer func() {
		if err := table.Close(); err != nil {
			d.logger.Warn("Failed to close frequency table", "error", err)
		}
	}()

	docs, err := d.countParagraphs(ctx, inputDir, files, table, stats)
	if err != nil {
		return stats, err
	}

	if stats.DistinctParagraphs, err = table.Len(); err != nil {
		return stats, fmt.Errorf("failed to size frequency table: %w", err)
	}
	d.logger.Info("Repeat paragraph threshold set", "threshold", d.cfg.Threshold, "distinct_paragraphs", stats.DistinctParagraphs)

	eliminator := dedup.NewEliminator(table, d.cfg.Threshold)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		result := d.process(ctx, eliminator, doc, outputDir)
		if result.Error != nil {
			if errors.Is(result.Error, context.Canceled) && ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Failed++
		} else {
			stats.Written++
		}
		stats.Results = append(stats.Results, result)
	}

	stats.Elapsed = time.Since(start)
	d.logger.Info(fmt.Sprintf("Completed advanced cleaning for %d docs in %.2fs", stats.Written, stats.Elapsed.Seconds()),
		"written", stats.Written,
		"failed", stats.Failed,
		"discovered", stats.Discovered,
	)
	return stats, nil
}

// countParagraphs is pass 1: read, filter and count every document.
func (d *Driver) countParagraphs(ctx context.Context, inputDir string, files []string, table dedup.Table, stats *Stats) ([]document, error) {
	docs := make([]document, 0, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := d.storage.ReadRawDocument(filepath.Join(inputDir, rel))
		if err != nil {
			d.logger.Error("Error reading document", "path", rel, "error", err)
			stats.Failed++
			stats.Results = append(stats.Results, manifest.DocumentResult{
				Path:      rel,
				Error:     err,
				ErrorType: manifest.ErrorTypeRead,
			})
			continue
		}

		filtered := d.filter.Apply(raw.Paragraphs)
		if err := table.Merge(mapreduce.Map(filtered)); err != nil {
			return nil, fmt.Errorf("failed to count paragraphs of %s: %w", rel, err)
		}
		docs = append(docs, document{relPath: rel, raw: raw, filtered: filtered})
	}
	return docs, nil
}

// process is pass 2 for one document.
func (d *Driver) process(ctx context.Context, eliminator *dedup.Eliminator, doc document, outputDir string) manifest.DocumentResult {
	result := manifest.DocumentResult{
		Path:               doc.relPath,
		DocID:              doc.raw.DocID,
		ParagraphsOriginal: len(doc.raw.Paragraphs),
	}
	fail := func(errorType string, err error) manifest.DocumentResult {
		result.Error = err
		result.ErrorType = errorType
		return result
	}

	cleaned, err := eliminator.Eliminate(doc.filtered)
	if err != nil {
		d.logger.Error("Error eliminating duplicates", "path", doc.relPath, "error", err)
		return fail(manifest.ErrorTypeDedup, err)
	}
	result.ParagraphsCleaned = len(cleaned)

	rec, err := d.enrich(ctx, enricher.Input{RelPath: doc.relPath, Document: doc.raw, Cleaned: cleaned})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			d.logger.Warn("Skipping document, enrichment budget exceeded", "path", doc.relPath, "budget", d.cfg.Timeout().String())
			return fail(manifest.ErrorTypeTimeout, err)
		}
		d.logger.Error("Error enriching document", "path", doc.relPath, "error", err)
		return fail(manifest.ErrorTypeEnrich, err)
	}
	result.Language = rec.Language
	result.Keywords = rec.Keywords

	data, err := storage.MarshalJSON(rec)
	if err != nil {
		d.logger.Error("Error marshalling record", "path", doc.relPath, "error", err)
		return fail(manifest.ErrorTypeMarshal, err)
	}

	outPath := storage.MirrorPath(outputDir, doc.relPath, OutputExtension)
	if err := d.storage.SaveFile(outPath, data); err != nil {
		d.logger.Error("Error writing record", "path", outPath, "error", err)
		return fail(manifest.ErrorTypeWrite, err)
	}

	d.logger.Debug("Wrote record", "path", outPath, "doc_id", rec.DocID, "language", rec.Language)
	result.OutputPath = outPath
	return result
}

type enrichOutcome struct {
	rec *models.EnrichedRecord
	err error
}

// enrich runs the enricher under the per-document budget. On overrun the
// enrichment goroutine is abandoned; it only touches goroutine-safe state.
func (d *Driver) enrich(ctx context.Context, in enricher.Input) (*models.EnrichedRecord, error) {
	budget := d.cfg.Timeout()
	if budget <= 0 {
		return d.safeEnrich(ctx, in)
	}

	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	done := make(chan enrichOutcome, 1)
	go func() {
		rec, err := d.safeEnrich(ctx, in)
		done <- enrichOutcome{rec: rec, err: err}
	}()

	select {
	case out := <-done:
		return out.rec, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (d *Driver) safeEnrich(ctx context.Context, in enricher.Input) (rec *models.EnrichedRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = nil, fmt.Errorf("enrichment panicked: %v", r)
		}
	}()
	return d.enricher.Enrich(ctx, in)
}
