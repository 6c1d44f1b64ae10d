// Command phpindex is the CLI front-end onto the extraction pass and
// workspace index, grounded on standardbeagle-lci's cmd/lci urfave/cli
// wiring.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/shinyvision/phpindex/internal/config"
	"github.com/shinyvision/phpindex/internal/lspintegration"
	"github.com/shinyvision/phpindex/internal/telemetry"
	"github.com/shinyvision/phpindex/internal/workspace"
)

var version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "phpindex",
		Usage:   "Static-analysis symbol indexer for PHP",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json-logs", Usage: "emit structured JSON log lines instead of a console writer"},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool("json-logs") {
				log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			}
			return nil
		},
		Commands: []*cli.Command{
			indexCommand(),
			symbolsCommand(),
			searchCommand(),
			diffCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("phpindex: command failed")
		os.Exit(1)
	}
}

func indexCommand() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "index every PHP file under one or more workspace roots",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "exclude", Usage: "glob patterns to skip, e.g. vendor/**"},
		},
		Action: func(c *cli.Context) error {
			roots := c.Args().Slice()
			if len(roots) == 0 {
				roots = []string{"."}
			}

			runID := telemetry.NewRunID()
			ctx, span := telemetry.StartRun(context.Background(), runID)
			defer span.End()

			cfg, err := config.Load(roots[0])
			if err != nil {
				return err
			}

			idx := &workspace.Indexer{Exclude: append(c.StringSlice("exclude"), cfg.Exclude...)}
			_, result, err := idx.Run(ctx, roots)
			if err != nil {
				return err
			}

			log.Info().Str("run_id", string(runID)).Int("indexed", result.FilesIndexed).Int("failed", result.FilesFailed).Msg("index complete")
			return nil
		},
	}
}

func symbolsCommand() *cli.Command {
	return &cli.Command{
		Name:      "symbols",
		Usage:     "run the extraction pass on one file and print its symbol tree as JSON",
		ArgsUsage: "<file.php>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("phpindex symbols: missing file argument")
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			idx, err := lspintegration.ParseOnDemand(context.Background(), "file://"+path, content)
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(idx)
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "index a workspace and fuzzy-search its symbols",
		ArgsUsage: "<root> <query>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return fmt.Errorf("phpindex search: usage: phpindex search <root> <query>")
			}
			root := c.Args().Get(0)
			query := c.Args().Get(1)

			idx := &workspace.Indexer{Exclude: []string{"vendor/**"}}
			ws, _, err := idx.Run(context.Background(), []string{root})
			if err != nil {
				return err
			}

			matches := ws.FuzzySearch(query, 0.5)
			for _, m := range matches {
				fmt.Printf("%-8s %-40s %s\n", m.Entry.Symbol.Kind, m.Entry.Symbol.Name, m.Entry.URI)
			}
			return nil
		},
	}
}
