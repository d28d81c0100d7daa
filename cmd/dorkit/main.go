// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/dorkit"
	"github.com/poiesic/dorkit/batch"
	"github.com/poiesic/dorkit/catalog"
	"github.com/poiesic/dorkit/core"
	"github.com/poiesic/dorkit/metrics"
	"github.com/poiesic/dorkit/translate"
)

var errEmptyQuery = errors.New("please enter a search query")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dorkit",
		Usage: "Turn plain-language search requests into search-engine dork queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "translate",
				Usage:     "Translate a request into a dork query",
				ArgsUsage: "<request...>",
				Action:    translateCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "url",
						Aliases: []string{"u"},
						Usage:   "Also print the Google search URL",
					},
				},
			},
			{
				Name:      "explain",
				Usage:     "Show which rule or fallback passes produced the query",
				ArgsUsage: "<request...>",
				Action:    explainCommand,
			},
			{
				Name:   "batch",
				Usage:  "Translate a file of requests, one per line",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "File with one request per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write request<TAB>query lines here instead of stdout",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent translation workers",
						Value: runtime.NumCPU(),
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N requests",
						Value: 100,
					},
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print how many requests each rule handled when done",
					},
				},
			},
			{
				Name:   "operators",
				Usage:  "List search operators from the catalog",
				Action: operatorsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Only show one category (Domain, File, Title, URL, Content, Special, Modifier, Logic, Range, Security)",
					},
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Filter by text in the operator or its description",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB catalog directory (in-memory when empty)",
					},
				},
			},
			{
				Name:   "templates",
				Usage:  "List quick templates and example requests",
				Action: templatesCommand,
			},
		},
	}
}

// requestText joins the arguments, or reads stdin when there are none.
func requestText(c *cli.Context) (string, error) {
	text := strings.Join(c.Args().Slice(), " ")
	if c.NArg() == 0 {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return "", fmt.Errorf("failed to read request: %w", err)
		}
		text = string(data)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyQuery
	}
	return text, nil
}

func translateCommand(c *cli.Context) error {
	text, err := requestText(c)
	if err != nil {
		return err
	}

	query := translate.NewTranslator().Translate(text)
	fmt.Fprintln(c.App.Writer, query)
	if c.Bool("url") {
		fmt.Fprintln(c.App.Writer, dorkit.SearchURL(query))
	}
	return nil
}

// passPrinter prints the extraction state after every fallback pass.
type passPrinter struct {
	w io.Writer
}

var _ translate.Monitor = (*passPrinter)(nil)

func (p *passPrinter) Start(input string)               { fmt.Fprintf(p.w, "input:    %s\n", input) }
func (p *passPrinter) RuleMatched(_ string, _ []string) {}
func (p *passPrinter) Finish(_ string)                  {}

func (p *passPrinter) PassApplied(pass string, e translate.Extraction) {
	fmt.Fprintf(p.w, "  %-10s text=%q operators=%q terms=%q\n", pass, e.Text, e.Operators, e.Terms)
}

func explainCommand(c *cli.Context) error {
	text, err := requestText(c)
	if err != nil {
		return err
	}

	w := c.App.Writer
	result := translate.NewTranslator(translate.WithMonitor(&passPrinter{w: w})).Explain(text)
	if result.Fallback {
		fmt.Fprintln(w, "rule:     none (fallback extraction)")
	} else {
		fmt.Fprintf(w, "rule:     %s\n", result.Rule)
		for i, group := range result.Groups[1:] {
			fmt.Fprintf(w, "  group %d: %q\n", i+1, group)
		}
	}
	fmt.Fprintf(w, "query:    %s\n", result.Query)
	return nil
}

func batchCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	inputs, err := batch.ReadInputs(in)
	if err != nil {
		return err
	}

	cfg := batch.NewConfig(
		batch.WithPoolSize(c.Int("pool-size")),
		batch.WithReportInterval(c.Int("report-interval")),
	)
	stats := metrics.NewMetrics()
	translator := translate.NewTranslator(translate.WithMonitor(stats))
	runner, err := batch.NewRunner(translator, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx, inputs)
	if err != nil {
		return fmt.Errorf("batch translation failed: %w", err)
	}

	if c.Bool("stats") {
		if err := printStats(c.App.ErrWriter, stats); err != nil {
			return err
		}
	}

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return batch.WriteResults(out, results)
}

func printStats(w io.Writer, stats *metrics.Metrics) error {
	summary, err := stats.Summary()
	if err != nil {
		return fmt.Errorf("failed to gather stats: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "translated\t%d\n", summary.Translations)
	fmt.Fprintf(tw, "fallback\t%d\n", summary.Fallbacks)
	fmt.Fprintf(tw, "empty\t%d\n", summary.Empty)
	for _, rc := range summary.Rules {
		fmt.Fprintf(tw, "rule %s\t%d\n", rc.Rule, rc.Count)
	}
	return tw.Flush()
}

func operatorsCommand(c *cli.Context) error {
	ctx := context.Background()

	var category core.Category
	if name := c.String("category"); name != "" {
		var err error
		if category, err = core.ParseCategory(name); err != nil {
			return err
		}
	}

	lib, err := dorkit.OpenLibrary(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer lib.Close()

	ops, err := lib.Operators().SearchOperators(ctx, c.String("search"), category)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		fmt.Fprintln(c.App.Writer, "No operators found matching your search.")
		return nil
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATOR\tCATEGORY\tDESCRIPTION\tEXAMPLE")
	for _, op := range ops {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Token, op.Category, op.Description, op.Example)
	}
	return tw.Flush()
}

func templatesCommand(c *cli.Context) error {
	w := c.App.Writer

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE\tQUERY")
	for _, tmpl := range catalog.Templates() {
		fmt.Fprintf(tw, "%s\t%s\n", tmpl.Label, tmpl.Query)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	translator := translate.NewTranslator()
	for _, example := range catalog.Examples() {
		fmt.Fprintf(w, "  %s\n    => %s\n", example, translator.Translate(example))
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
