package validate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dtnitsch/corpus-enricher/internal/common"
	"github.com/dtnitsch/corpus-enricher/pkg/storage"
	"github.com/urfave/cli/v2"
)

// UnknownDocID names records that carry no doc_id.
const UnknownDocID = "unknown"

// Command returns the validate command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Copy enriched records with cleaned paragraphs into a flat directory",
		ArgsUsage: "INPUT_DIR OUTPUT_DIR",
		Flags: []cli.Flag{
			common.QuietFlag,
			common.VerboseFlag,
		},
		Action: ValidateAction,
	}
}

func ValidateAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	inputDir, outputDir, err := common.DirArgs(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := Run(ctx, inputDir, outputDir, logger); err != nil {
		logger.Error("validation failed", "error", err)
		return cli.Exit("", common.ExitSetup)
	}
	return nil
}

// Summary counts the outcome of a run.
type Summary struct {
	Scanned int
	Passed  int
	Written int
	Skipped int
}

// Run copies every record under inputDir whose paragraphs_cleaned is
// non-empty to outputDir/<doc_id>.json. Unreadable records are logged and
// skipped; a later record with the same doc_id overwrites an earlier one.
func Run(ctx context.Context, inputDir, outputDir string, logger *slog.Logger) (Summary, error) {
	start := time.Now()
	var summary Summary

	files, err := storage.DiscoverFiles(inputDir, ".json")
	if err != nil {
		return summary, err
	}
	summary.Scanned = len(files)
	logger.Info("Scanned records", "input", inputDir, "count", len(files))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	s := &storage.Storage{}
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rec, err := s.ReadRecord(filepath.Join(inputDir, rel))
		if err != nil {
			logger.Warn("Skipping unreadable record", "path", rel, "error", err)
			summary.Skipped++
			continue
		}
		if !rec.HasContent() {
			logger.Debug("Record has no cleaned paragraphs", "path", rel, "doc_id", rec.DocID)
			continue
		}
		summary.Passed++

		docID := rec.DocID
		if docID == "" {
			docID = UnknownDocID
		}
		if err := s.WriteJSON(filepath.Join(outputDir, docID+".json"), rec); err != nil {
			logger.Error("Failed to write record", "path", rel, "doc_id", docID, "error", err)
			summary.Skipped++
			continue
		}
		summary.Written++
	}

	logger.Info("Records passed validation", "count", summary.Passed)
	logger.Info(fmt.Sprintf("Wrote %d validated records in %.2fs", summary.Written, time.Since(start).Seconds()),
		"output", outputDir,
		"skipped", summary.Skipped,
	)
	return summary, nil
}
