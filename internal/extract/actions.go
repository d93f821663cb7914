package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dtnitsch/corpus-enricher/internal/common"
	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/dtnitsch/corpus-enricher/pkg/parser"
	"github.com/dtnitsch/corpus-enricher/pkg/storage"
	"github.com/urfave/cli/v2"
)

// InputExtension is the extension of the pages this command reads.
const InputExtension = ".html"

// Command returns the extract command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract plain text and paragraphs from a tree of HTML pages",
		ArgsUsage: "INPUT_DIR OUTPUT_DIR",
		Flags: []cli.Flag{
			common.QuietFlag,
			common.VerboseFlag,
		},
		Action: ExtractAction,
	}
}

func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	inputDir, outputDir, err := common.DirArgs(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := Run(ctx, inputDir, outputDir, logger); err != nil {
		logger.Error("extraction failed", "error", err)
		return cli.Exit("", common.ExitSetup)
	}
	return nil
}

// Summary counts the outcome of a run.
type Summary struct {
	Discovered int
	Written    int
	Failed     int
}

// Run converts every page under inputDir into a RawDocument written to the
// mirrored path under outputDir. Pages that cannot be read, parsed or written
// are logged and skipped.
func Run(ctx context.Context, inputDir, outputDir string, logger *slog.Logger) (Summary, error) {
	start := time.Now()
	var summary Summary

	files, err := storage.DiscoverFiles(inputDir, InputExtension)
	if err != nil {
		return summary, err
	}
	summary.Discovered = len(files)
	logger.Info("Discovered pages", "input", inputDir, "count", len(files))

	s := &storage.Storage{}
	p := &parser.Parser{}
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		doc, err := extractOne(s, p, inputDir, rel)
		if err != nil {
			logger.Error("Failed to extract page", "path", rel, "error", err)
			summary.Failed++
			continue
		}

		out := storage.MirrorPath(outputDir, rel, ".json")
		if err := s.WriteJSON(out, doc); err != nil {
			logger.Error("Failed to write document", "path", rel, "error", err)
			summary.Failed++
			continue
		}
		logger.Debug("Extracted page", "path", rel, "doc_id", doc.DocID, "paragraphs", len(doc.Paragraphs))
		summary.Written++
	}

	logger.Info(fmt.Sprintf("Completed extraction of %d files in %.2fs", summary.Written, time.Since(start).Seconds()),
		"written", summary.Written,
		"failed", summary.Failed,
	)
	return summary, nil
}

func extractOne(s *storage.Storage, p *parser.Parser, inputDir, rel string) (*models.RawDocument, error) {
	data, err := s.ReadFile(filepath.Join(inputDir, rel))
	if err != nil {
		return nil, err
	}

	pageURL := &url.URL{Scheme: "file", Path: "/" + filepath.ToSlash(rel)}
	extraction, err := p.Extract(string(data), pageURL)
	if err != nil {
		return nil, err
	}

	return &models.RawDocument{
		DocID:      common.DocID(rel),
		Filename:   filepath.Base(rel),
		Title:      extraction.Title,
		RawText:    extraction.RawText,
		Paragraphs: extraction.Paragraphs,
	}, nil
}
