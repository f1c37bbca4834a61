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


// Package catalog holds the car reference data used by the recommendation
// flow. The catalog is read-only at runtime: entries come from the built-in
// table or from a TOML file loaded at startup, and entry order is preserved
// because it decides ties during ranking.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/carvisor/carvisor/core"
)

// Catalog is an ordered, immutable collection of car entries.
type Catalog struct {
	entries []core.CatalogEntry
}

// New creates a catalog from the given entries, validating each one.
// Entry order is preserved.
func New(entries []core.CatalogEntry) (*Catalog, error) {
	for i := range entries {
		if err := ValidateEntry(&entries[i]); err != nil {
			return nil, fmt.Errorf("entry %q: %w", entries[i].Name, err)
		}
	}
	return &Catalog{entries: entries}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{entries: builtinEntries()}
}

// tomlFile mirrors the on-disk catalog layout.
type tomlFile struct {
	Cars []tomlEntry `toml:"cars"`
}

type tomlEntry struct {
	Name         string   `toml:"name"`
	PriceMinUSD  int64    `toml:"price_min_usd"`
	PriceMaxUSD  int64    `toml:"price_max_usd"`
	FuelEconomy  string   `toml:"fuel_economy"`
	Size         string   `toml:"size"`
	Purposes     []string `toml:"purposes"`
	Priorities   []string `toml:"priorities"`
	BrandOrigin  string   `toml:"brand_origin"`
	SafetyRating string   `toml:"safety_rating"`
	Technology   string   `toml:"technology"`
	Style        string   `toml:"style"`
	Drivetrain   string   `toml:"drivetrain"`
	BodyType     string   `toml:"body_type"`
}

// LoadTOML loads a catalog from a TOML file. Entries keep file order.
func LoadTOML(path string) (*Catalog, error) {
	var file tomlFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(file.Cars) == 0 {
		return nil, fmt.Errorf("load catalog: %w", ErrEmptyCatalog)
	}

	entries := make([]core.CatalogEntry, 0, len(file.Cars))
	for _, car := range file.Cars {
		entries = append(entries, core.CatalogEntry{
			Name:         car.Name,
			PriceMinUSD:  car.PriceMinUSD,
			PriceMaxUSD:  car.PriceMaxUSD,
			FuelEconomy:  car.FuelEconomy,
			Size:         car.Size,
			Purposes:     car.Purposes,
			Priorities:   car.Priorities,
			BrandOrigin:  car.BrandOrigin,
			SafetyRating: car.SafetyRating,
			Technology:   car.Technology,
			Style:        car.Style,
			Drivetrain:   car.Drivetrain,
			BodyType:     car.BodyType,
		})
	}
	return New(entries)
}

// Entries returns the catalog entries in original order.
// The returned slice must not be mutated.
func (c *Catalog) Entries() []core.CatalogEntry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ByBudget returns entries whose maximum price does not exceed maxBudget.
func (c *Catalog) ByBudget(maxBudget int64) []core.CatalogEntry {
	var result []core.CatalogEntry
	for _, entry := range c.entries {
		if entry.PriceMaxUSD <= maxBudget {
			result = append(result, entry)
		}
	}
	return result
}

// ByPurposes returns entries listing at least one of the given purposes.
func (c *Catalog) ByPurposes(purposes ...string) []core.CatalogEntry {
	var result []core.CatalogEntry
	for _, entry := range c.entries {
		for _, p := range purposes {
			if slices.Contains(entry.Purposes, p) {
				result = append(result, entry)
				break
			}
		}
	}
	return result
}

// ByBrandOrigin returns entries with a matching brand origin
// (case-insensitive substring, so "american" matches "American (Electric)").
func (c *Catalog) ByBrandOrigin(origin string) []core.CatalogEntry {
	var result []core.CatalogEntry
	for _, entry := range c.entries {
		if strings.Contains(strings.ToLower(entry.BrandOrigin), strings.ToLower(origin)) {
			result = append(result, entry)
		}
	}
	return result
}

// ByBodyType returns entries with the exact body type (case-insensitive).
func (c *Catalog) ByBodyType(bodyType string) []core.CatalogEntry {
	var result []core.CatalogEntry
	for _, entry := range c.entries {
		if strings.EqualFold(entry.BodyType, bodyType) {
			result = append(result, entry)
		}
	}
	return result
}
