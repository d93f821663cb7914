package enrich

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtnitsch/corpus-enricher/internal/common"
	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/dtnitsch/corpus-enricher/pkg/boilerplate"
	"github.com/dtnitsch/corpus-enricher/pkg/enricher"
	"github.com/dtnitsch/corpus-enricher/pkg/manifest"
	"github.com/dtnitsch/corpus-enricher/pkg/pipeline"
	"github.com/dtnitsch/corpus-enricher/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Command returns the enrich command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "enrich",
		Usage:     "Clean, deduplicate and enrich extracted documents",
		ArgsUsage: "INPUT_DIR OUTPUT_DIR",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Drop paragraphs seen this many times or more across the corpus",
				EnvVars: []string{"CORPUS_ENRICHER_THRESHOLD"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or TOML config file",
				EnvVars: []string{"CORPUS_ENRICHER_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "frequency-store",
				Usage: `Paragraph frequency table: "memory" or "sqlite"`,
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Write a YAML run manifest to this path",
			},
			common.QuietFlag,
			common.VerboseFlag,
		},
		Action: EnrichAction,
	}
}

func EnrichAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	inputDir, outputDir, err := common.DirArgs(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit("", common.ExitSetup)
	}

	filter, err := boilerplate.New(cfg.BoilerplatePatterns)
	if err != nil {
		logger.Error("failed to compile boilerplate patterns", "error", err)
		return cli.Exit("", common.ExitSetup)
	}

	e, err := enricher.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize enricher", "error", err)
		return cli.Exit("", common.ExitSetup)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := pipeline.NewDriver(cfg, filter, e, logger).Run(ctx, inputDir, outputDir)
	if err != nil {
		logger.Error("enrichment run failed", "error", err)
		if ctx.Err() != nil {
			return cli.Exit("", common.ExitUsage)
		}
		return cli.Exit("", common.ExitSetup)
	}

	if path := c.String("manifest"); path != "" {
		writeManifest(path, cfg, inputDir, outputDir, stats, logger)
	}
	return nil
}

// loadConfig reads --config and applies the flag overrides.
func loadConfig(c *cli.Context) (models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Int("threshold")
	}
	if c.IsSet("frequency-store") {
		cfg.FrequencyStore = c.String("frequency-store")
	}
	return cfg, cfg.Validate()
}

// writeManifest logs instead of failing the run: records are already written.
func writeManifest(path string, cfg models.Config, inputDir, outputDir string, stats *pipeline.Stats, logger *slog.Logger) {
	m := manifest.Build(manifest.RunInfo{
		InputDir:           inputDir,
		OutputDir:          outputDir,
		Threshold:          cfg.Threshold,
		FrequencyStore:     cfg.FrequencyStore,
		DistinctParagraphs: stats.DistinctParagraphs,
		Elapsed:            stats.Elapsed,
	}, stats.Results, time.Now())

	if err := manifest.Write(path, m, &storage.Storage{}); err != nil {
		logger.Error("Error generating run manifest", "error", err)
		return
	}
	logger.Info("Run manifest saved", "path", path, "run_id", m.RunID)
}
