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
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/cvfind"
	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/ai/mock"
	"github.com/poiesic/cvfind/api"
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/importer"
	"github.com/poiesic/cvfind/query"
	"github.com/poiesic/cvfind/search"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "cvfind",
		Usage: "Search and question a collection of CV records",
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
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Action: serveCommand,
				Flags: append(storageFlags(), append(parserFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "Address to listen on",
						Value:   ":8080",
						EnvVars: []string{"CVFIND_ADDR"},
					},
					&cli.BoolFlag{
						Name:  "simulate-latency",
						Usage: "Delay answers to /query like a remote search backend would",
					},
				)...),
			},
			{
				Name:      "search",
				Usage:     "Keyword search over the collection",
				ArgsUsage: "<term>",
				Action:    searchCommand,
				Flags: append(storageFlags(),
					&cli.StringFlag{
						Name:  "scope",
						Usage: "Restrict matching to all, skills, experience or education",
						Value: "all",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Log how each record was scored to stderr",
					},
					jsonFlag(),
				),
			},
			{
				Name:      "query",
				Usage:     "Ask a natural-language question about the collection",
				ArgsUsage: "<question>",
				Action:    queryCommand,
				Flags: append(storageFlags(),
					&cli.BoolFlag{
						Name:  "simulate-latency",
						Usage: "Pause before searching and answering",
					},
					jsonFlag(),
				),
			},
			{
				Name:      "import",
				Usage:     "Import records from YAML or JSON files",
				ArgsUsage: "<file>...",
				Action:    importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						EnvVars:  []string{"CVFIND_DB"},
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to store in each batch",
						Value: importer.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: importer.DefaultReportInterval,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for each batch",
						Value: importer.DefaultMaxRetries,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: importer.DefaultRetryDelay,
					},
				},
			},
			{
				Name:      "upload",
				Usage:     "Parse CV documents and add them to the collection",
				ArgsUsage: "<file>...",
				Action:    uploadCommand,
				Flags:     append(storageFlags(), parserFlags()...),
			},
			{
				Name:   "list",
				Usage:  "List records in collection order",
				Action: listCommand,
				Flags:  append(storageFlags(), jsonFlag()),
			},
		},
	}
}

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory; the sample collection is used in memory when empty",
			EnvVars: []string{"CVFIND_DB"},
		},
		&cli.BoolFlag{
			Name:  "seed",
			Usage: "Load the sample collection into an empty database",
		},
	}
}

func parserFlags() []cli.Flag {
	defaults := ai.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "parser-host",
			Usage:   "OpenAI-compatible service host URL used to parse uploaded CVs",
			Value:   defaults.Host,
			EnvVars: []string{"CVFIND_PARSER_HOST"},
		},
		&cli.StringFlag{
			Name:    "parser-model",
			Usage:   "Model name used to parse uploaded CVs",
			Value:   defaults.Model,
			EnvVars: []string{"CVFIND_PARSER_MODEL"},
		},
		&cli.StringFlag{
			Name:    "parser-token",
			Usage:   "API token for the parser service",
			EnvVars: []string{"CVFIND_PARSER_TOKEN"},
		},
		&cli.BoolFlag{
			Name:  "mock-parser",
			Usage: "Parse every upload into the built-in sample CV instead of calling a model",
		},
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print results as JSON",
	}
}

// openDatabase opens the collection named by --db. Without --db the sample
// collection is served from memory.
func openDatabase(c *cli.Context) (*cvfind.Database, error) {
	dbPath := c.String("db")

	opts := []cvfind.DatabaseOption{cvfind.WithLogger(slog.Default())}
	if dbPath == "" || c.Bool("seed") {
		opts = append(opts, cvfind.WithSeedData())
	}
	if c.Bool("mock-parser") {
		opts = append(opts, cvfind.WithAIProvider(mock.NewMockProvider()))
	} else if c.IsSet("parser-host") || c.IsSet("parser-model") || c.IsSet("parser-token") {
		opts = append(opts, cvfind.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("parser-host")),
			ai.WithModel(c.String("parser-model")),
			ai.WithToken(c.String("parser-token")),
		)))
	}

	db, err := cvfind.NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var engineOpts []query.Option
	if c.Bool("simulate-latency") {
		engineOpts = append(engineOpts, query.WithLatency(query.SimulatedLatency()))
	}
	engine, err := db.NewQueryEngine(engineOpts...)
	if err != nil {
		return err
	}

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	server, err := api.NewServer(db.Repository(), engine, api.WithPipeline(pipeline), api.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, c.String("addr"))
}

func searchCommand(c *cli.Context) error {
	term := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("a search term is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	var monitor search.SearchMonitor
	if c.Bool("explain") {
		handler := slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug})
		monitor = &search.LogMonitor{Logger: slog.New(handler)}
	}

	results, err := searcher.SearchWithMonitor(c.Context, term, search.ParseScope(c.String("scope")), search.KeywordWeights, monitor)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, results)
	}
	printResults(c.App.Writer, results)
	return nil
}

func queryCommand(c *cli.Context) error {
	question := strings.Join(c.Args().Slice(), " ")

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var engineOpts []query.Option
	if c.Bool("simulate-latency") {
		engineOpts = append(engineOpts, query.WithLatency(query.SimulatedLatency()))
	}
	engine, err := db.NewQueryEngine(engineOpts...)
	if err != nil {
		return err
	}

	answer, err := engine.Ask(c.Context, question)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, answer)
	}
	fmt.Fprintln(c.App.Writer, answer.Response)
	return nil
}

func importCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one record file is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := importer.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	im, err := db.NewImporter(config, importer.WithProgress(c.App.ErrWriter))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.ErrWriter, "Database: %s\n", c.String("db"))
	for _, path := range c.Args().Slice() {
		fmt.Fprintf(c.App.ErrWriter, "Importing %s\n", path)
		result, err := im.ImportFile(c.Context, path)
		if err != nil {
			return fmt.Errorf("import of %s failed: %w", path, err)
		}
		fmt.Fprintf(c.App.Writer, "%s: %d imported, %d skipped in %s\n",
			path, result.Imported, result.Skipped, result.Elapsed.Round(time.Millisecond))
	}
	return nil
}

func uploadCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one document is required")
	}

	docs := make([]ai.Document, 0, c.NArg())
	for _, path := range c.Args().Slice() {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	added, err := pipeline.UploadBatch(c.Context, docs)
	for _, record := range added {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", record.ID, record.Name)
	}
	return err
}

func listCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.Repository().ListRecords(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, records)
	}
	for _, record := range records {
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", record.ID, record.Name, record.Email)
	}
	return nil
}

func readDocument(path string) (ai.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ai.Document{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ai.Document{}, err
	}

	mimeType, _, _ := mime.ParseMediaType(mime.TypeByExtension(filepath.Ext(path)))
	return ai.Document{
		Name:     filepath.Base(path),
		MimeType: mimeType,
		URI:      "file://" + filepath.ToSlash(abs),
		Content:  content,
	}, nil
}

func printResults(w io.Writer, results []*core.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching CVs")
		return
	}
	fmt.Fprintf(w, "Found %d hits\n", len(results))
	for i, hit := range results {
		fields := make([]string, len(hit.MatchedFields))
		for j, field := range hit.MatchedFields {
			fields[j] = string(field)
		}
		fmt.Fprintf(w, "%d. %s (%d) [%s]\n", i+1, hit.Record.Name, hit.Score, strings.Join(fields, ", "))
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
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
