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


// The seeder populates a fresh knowledge base with the built-in car
// catalog and the IT helpdesk articles, so chat and helpdesk sessions
// have something to retrieve on day one.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/carvisor/carvisor"
	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/catalog"
	"github.com/carvisor/carvisor/core"
	"github.com/carvisor/carvisor/helpdesk"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "seeder",
		Usage:  "Seed a knowledge base with the car catalog and helpdesk articles",
		Action: seedCommand,
		Before: func(c *cli.Context) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				slog.Warn("could not load .env file", "err", err)
			}
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to the knowledge base directory",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Optional TOML catalog file (defaults to the built-in catalog)",
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "OpenAI-compatible service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"CARVISOR_HOST"},
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
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithToken(c.String("token")),
	)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	cars, err := loadCatalog(c.String("catalog"))
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
	for _, entry := range cars.Entries() {
		count, err := pipeline.IngestText(c.Context, describeCar(entry), "car-catalog",
			map[string]string{"car": entry.Name})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", entry.Name, err)
		}
		total += count
	}
	fmt.Printf("Seeded %d catalog chunks (%d cars)\n", total, cars.Len())

	total = 0
	for _, article := range helpdesk.SeedDocuments() {
		count, err := pipeline.IngestText(c.Context, article, "it-helpdesk", nil)
		if err != nil {
			return fmt.Errorf("failed to seed helpdesk article: %w", err)
		}
		total += count
	}
	fmt.Printf("Seeded %d helpdesk chunks\n", total)

	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cars, err := catalog.LoadTOML(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cars, nil
}

// describeCar renders a catalog entry as retrievable prose.
func describeCar(entry core.CatalogEntry) string {
	return fmt.Sprintf(
		"%s: a %s %s priced between $%d and $%d. Fuel economy: %s. "+
			"Best for %s. Known for %s. Safety rating: %s. Technology: %s. "+
			"Style: %s. Drivetrain: %s.",
		entry.Name, entry.Size, entry.BodyType, entry.PriceMinUSD, entry.PriceMaxUSD,
		entry.FuelEconomy, strings.Join(entry.Purposes, ", "),
		strings.Join(entry.Priorities, ", "), entry.SafetyRating,
		entry.Technology, entry.Style, entry.Drivetrain)
}
