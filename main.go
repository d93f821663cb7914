package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/corpus-enricher/internal/enrich"
	"github.com/dtnitsch/corpus-enricher/internal/extract"
	"github.com/dtnitsch/corpus-enricher/internal/validate"
	"github.com/dtnitsch/corpus-enricher/pkg/help"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "corpus-enricher",
		Usage: "Turn extracted news pages into cleaned, enriched records",
		Description: "Pipeline stages:\n" +
			"  extract   HTML pages -> raw documents (text + naive paragraphs)\n" +
			"  enrich    raw documents -> enriched records (dedup, language, entities, keywords, summary)\n" +
			"  validate  enriched records -> flat directory of records with content",
		Commands: []*cli.Command{
			extract.Command(),
			enrich.Command(),
			validate.Command(),
			{
				Name:  "quickstart",
				Usage: "Print a YAML quick reference of stages, commands and config keys",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
