// Copyright 2025 The Carvisor Authors
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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/carvisor/carvisor"
	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/ai/openai"
	"github.com/carvisor/carvisor/core"
	"github.com/carvisor/carvisor/reembed"
	"github.com/carvisor/carvisor/retrieval"
	"github.com/carvisor/carvisor/storage/badger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "carvisor",
		Usage: "Automotive advisor chatbot with a semantic knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Start an interactive advisor session",
				Action: chatCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge base directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "live-news",
						Usage: "Answer news questions with a live web search",
					},
				),
			},
			{
				Name:   "helpdesk",
				Usage:  "Start an interactive IT helpdesk session",
				Action: helpdeskCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge base directory",
						Required: true,
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest text files into the knowledge base",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge base directory",
						Required: true,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the knowledge base",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge base directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: retrieval.DefaultLimit,
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all documents with new embeddings",
				Action: reembedCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge base directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags are shared by every command that talks to the model services.
// Values can come from the environment (or a .env file).
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Usage:   "OpenAI-compatible service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"CARVISOR_HOST"},
		},
		&cli.StringFlag{
			Name:    "chat-model",
			Usage:   "Chat model name",
			Value:   "qwen2.5:3b",
			EnvVars: []string{"CARVISOR_CHAT_MODEL"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "embeddinggemma",
			EnvVars: []string{"CARVISOR_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API key for hosted services",
			Value:   "none",
			EnvVars: []string{"CARVISOR_TOKEN", "OPENAI_API_KEY"},
		},
	}
}

func aiConfigFromFlags(c *cli.Context) (*ai.Config, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithToken(c.String("token")),
	)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func chatCommand(c *cli.Context) error {
	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	opts := []carvisor.AdvisorOption{carvisor.WithAIConfig(config)}
	if c.Bool("live-news") {
		opts = append(opts, carvisor.WithLiveNewsSearch())
	}

	advisor, err := carvisor.NewAdvisor(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open advisor: %w", err)
	}
	defer advisor.Close()

	sessionID := uuid.NewString()
	fmt.Println("🚗 Car advisor ready. Ask about cars, or type /reset or /exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		switch question {
		case "":
			continue
		case "/exit":
			return nil
		case "/reset":
			advisor.Assistant().Sessions().Get(sessionID).Reset()
			fmt.Println("Conversation cleared.")
			continue
		}

		answer := advisor.Assistant().Process(c.Context, sessionID, question)
		fmt.Println(answer)
		fmt.Println()
	}
	return scanner.Err()
}

func helpdeskCommand(c *cli.Context) error {
	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	advisor, err := carvisor.NewAdvisor(c.String("db"), carvisor.WithAIConfig(config))
	if err != nil {
		return fmt.Errorf("failed to open advisor: %w", err)
	}
	defer advisor.Close()

	fmt.Println("🛠️ IT helpdesk ready. Describe your issue, or type /exit.")

	var history []core.Exchange
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "/exit" {
			return nil
		}

		answer := advisor.Helpdesk().Respond(c.Context, question, history)
		history = append(history, core.Exchange{Question: question, Answer: answer})
		fmt.Println(answer)
		fmt.Println()
	}
	return scanner.Err()
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	advisor, err := carvisor.NewAdvisor(c.String("db"), carvisor.WithAIConfig(config))
	if err != nil {
		return fmt.Errorf("failed to open advisor: %w", err)
	}
	defer advisor.Close()

	pipeline, err := advisor.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	total := 0
	for _, path := range c.Args().Slice() {
		count, err := pipeline.IngestFile(c.Context, path, nil)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		fmt.Printf("%s: %d chunks\n", path, count)
		total += count
	}
	fmt.Printf("Ingested %d chunks from %d files\n", total, c.NArg())
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	advisor, err := carvisor.NewAdvisor(c.String("db"), carvisor.WithAIConfig(config))
	if err != nil {
		return fmt.Errorf("failed to open advisor: %w", err)
	}
	defer advisor.Close()

	results, err := advisor.Retriever().Search(c.Context, query, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("No matching documents.")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%d. [%.3f] (%s) %s\n", i+1, result.Score, result.Document.Source, result.Document.Content)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer backend.Close()

	repo := badger.NewDocumentRepository(backend)

	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	embedder, err := openai.NewEmbedder(config)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Knowledge base: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func setup(c *cli.Context) error {
	// A .env file is optional; flags and real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "err", err)
	}
	return setupLogger(c)
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
