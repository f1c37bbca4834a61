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


package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/ai/openai"
	"github.com/carvisor/carvisor/catalog"
	"github.com/carvisor/carvisor/core"
	gocache "github.com/patrickmn/go-cache"
)

// vndPerUSD converts Vietnamese budget phrasings ("1 tỷ", "800 triệu")
// into the catalog's USD prices.
const vndPerUSD = 25000

const extractionPromptFmt = `You are an expert at analyzing car buying needs. Extract the following information from the user's question.

Return a JSON object with these fields (use null or empty lists if not mentioned):
{
  "budget_max": <integer, maximum budget in USD, or null>,
  "purposes": [<list of purposes from: %s>],
  "priorities": [<list of priorities from: %s>],
  "brand_preference": "<brand origin from: %s, or null>",
  "passengers": <integer or null>
}

Amounts given in Vietnamese dong (VND) must be converted to USD at 25,000 VND per USD.
Only return the JSON object, no other text.`

// Budget patterns. VND forms first so "1 tỷ" is not read as a bare number.
var (
	reBillionVND = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*tỷ`)
	reMillionVND = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*triệu`)
	reUSD        = regexp.MustCompile(`\$?(\d{1,3},\d{3}|\d{4,6})(?:\s*(?:usd|dollars?|\$))?`)
	rePassengers = regexp.MustCompile(`(\d+)\s*(?:passengers?|seats?|people|chỗ|người)`)
)

// Keyword tables for the degraded-mode extraction. Checked in order.
var purposeKeywords = []struct {
	purpose string
	words   []string
}{
	{"family", []string{"family", "kids", "children", "school", "gia đình"}},
	{"daily_commute", []string{"commute", "commuting", "daily", "đi làm"}},
	{"business", []string{"business", "professional", "client", "kinh doanh"}},
	{"leisure", []string{"leisure", "weekend", "vacation", "trip", "du lịch"}},
	{"towing", []string{"tow", "haul", "truck", "cargo"}},
	{"luxury", []string{"luxury", "premium", "high-end", "sang trọng"}},
}

var brandKeywords = []struct {
	brand string
	words []string
}{
	{"Japanese", []string{"toyota", "honda", "mazda", "nissan", "subaru", "japanese", "nhật"}},
	{"German", []string{"bmw", "mercedes", "audi", "volkswagen", "german", "đức"}},
	{"Korean", []string{"hyundai", "kia", "korean", "hàn"}},
	{"American", []string{"ford", "chevrolet", "gmc", "tesla", "american", "mỹ"}},
}

var priorityKeywords = []struct {
	priority string
	words    []string
}{
	{"fuel_economy", []string{"fuel", "mpg", "economical", "tiết kiệm"}},
	{"safety", []string{"safe", "safety", "an toàn"}},
	{"reliability", []string{"reliable", "reliability", "bền"}},
	{"technology", []string{"tech", "technology", "screen", "công nghệ"}},
	{"cargo_space", []string{"cargo", "storage", "luggage", "chở đồ"}},
}

// Extractor builds Criteria from free text. The LLM path is attempted
// first; any failure falls through to keyword extraction, which never
// errors. Results are cached briefly since users often repeat or refine
// the same request.
type Extractor struct {
	chatter ai.Chatter
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewExtractor creates an Extractor backed by the given chatter.
func NewExtractor(chatter ai.Chatter) *Extractor {
	return &Extractor{
		chatter: chatter,
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
		logger:  slog.Default().With("component", "recommend"),
	}
}

// Extract returns the criteria found in the question. Never fails.
func (e *Extractor) Extract(ctx context.Context, question string) *core.Criteria {
	key := strings.ToLower(strings.TrimSpace(question))
	if cached, found := e.cache.Get(key); found {
		return cached.(*core.Criteria)
	}

	criteria, err := e.extractWithLLM(ctx, question)
	if err != nil {
		e.logger.Warn("criteria extraction via model failed, using keywords", "error", err)
		criteria = ExtractByKeywords(question)
	}

	e.cache.Set(key, criteria, gocache.DefaultExpiration)
	return criteria
}

// llmCriteria mirrors the JSON shape the extraction prompt asks for.
type llmCriteria struct {
	BudgetMax       *int64   `json:"budget_max"`
	Purposes        []string `json:"purposes"`
	Priorities      []string `json:"priorities"`
	BrandPreference *string  `json:"brand_preference"`
	Passengers      *int     `json:"passengers"`
}

func (e *Extractor) extractWithLLM(ctx context.Context, question string) (*core.Criteria, error) {
	prompt := fmt.Sprintf(extractionPromptFmt,
		strings.Join(catalog.ValidPurposes, ", "),
		strings.Join(catalog.ValidPriorities, ", "),
		strings.Join(catalog.ValidBrandOrigins, ", "))

	resp, err := e.chatter.Chat(ctx, []ai.Message{
		ai.SystemMessage(prompt),
		ai.HumanMessage(question),
	}, ai.WithTemperature(0), ai.WithJSONMode())
	if err != nil {
		return nil, err
	}

	var parsed llmCriteria
	repaired := openai.RepairJSON(resp.Content)
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, fmt.Errorf("parse criteria: %w", err)
	}

	criteria := &core.Criteria{
		Purposes:   filterKnown(parsed.Purposes, catalog.ValidPurposes),
		Priorities: filterKnown(parsed.Priorities, catalog.ValidPriorities),
	}
	if parsed.BudgetMax != nil && *parsed.BudgetMax > 0 {
		criteria.BudgetMax = *parsed.BudgetMax
	}
	if parsed.BrandPreference != nil {
		criteria.BrandPreference = *parsed.BrandPreference
	}
	if parsed.Passengers != nil && *parsed.Passengers > 0 {
		criteria.Passengers = *parsed.Passengers
	}
	return criteria, nil
}

// ExtractByKeywords is the deterministic fallback extraction.
// It never fails; unrecognized questions yield empty criteria.
func ExtractByKeywords(question string) *core.Criteria {
	lower := strings.ToLower(question)
	criteria := &core.Criteria{}

	criteria.BudgetMax = extractBudget(lower)

	for _, group := range purposeKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				criteria.Purposes = append(criteria.Purposes, group.purpose)
				break
			}
		}
	}

	// An SUV ask is a body-shape preference; the closest purpose tags
	// shared by the catalog's SUVs are family and leisure.
	if strings.Contains(lower, "suv") {
		for _, p := range []string{"family", "leisure"} {
			if !slices.Contains(criteria.Purposes, p) {
				criteria.Purposes = append(criteria.Purposes, p)
			}
		}
	}

	for _, group := range brandKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				criteria.BrandPreference = group.brand
				break
			}
		}
		if criteria.BrandPreference != "" {
			break
		}
	}

	for _, group := range priorityKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				criteria.Priorities = append(criteria.Priorities, group.priority)
				break
			}
		}
	}

	if match := rePassengers.FindStringSubmatch(lower); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			criteria.Passengers = n
		}
	}

	return criteria
}

// extractBudget parses a maximum budget in USD from the question.
// Vietnamese dong amounts are converted at vndPerUSD.
func extractBudget(lower string) int64 {
	if match := reBillionVND.FindStringSubmatch(lower); match != nil {
		if amount, err := parseDecimal(match[1]); err == nil {
			return int64(amount * 1_000_000_000 / vndPerUSD)
		}
	}
	if match := reMillionVND.FindStringSubmatch(lower); match != nil {
		if amount, err := parseDecimal(match[1]); err == nil {
			return int64(amount * 1_000_000 / vndPerUSD)
		}
	}
	if match := reUSD.FindStringSubmatch(lower); match != nil {
		raw := strings.ReplaceAll(match[1], ",", "")
		if amount, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return amount
		}
	}
	return 0
}

// parseDecimal accepts "1", "1.5" and the Vietnamese "1,5" form.
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func filterKnown(values, known []string) []string {
	var result []string
	for _, v := range values {
		if slices.Contains(known, v) {
			result = append(result, v)
		}
	}
	return result
}
