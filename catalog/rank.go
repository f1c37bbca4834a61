package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/carvisor/carvisor/core"
)

// Scoring weights for criteria matching.
const (
	budgetBonus    = 10
	purposeBonus   = 15
	brandBonus     = 20
	brandPenalty   = -5
	priorityBonus  = 10
	maxRecommended = 3
)

// Rank filters the catalog against the criteria and returns up to three
// entries ordered by descending match score. Entries over budget are
// excluded outright, as are entries with no purpose overlap when purposes
// were requested. Ties keep catalog order.
func (c *Catalog) Rank(criteria *core.Criteria) []core.Ranked {
	var ranked []core.Ranked

	for _, entry := range c.entries {
		score, ok := scoreEntry(&entry, criteria)
		if !ok {
			continue
		}
		ranked = append(ranked, core.Ranked{Entry: entry, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > maxRecommended {
		ranked = ranked[:maxRecommended]
	}
	return ranked
}

// scoreEntry computes the match score for one entry.
// Returns ok=false when the entry is filtered out entirely.
func scoreEntry(entry *core.CatalogEntry, criteria *core.Criteria) (int, bool) {
	score := 0

	if criteria.BudgetMax > 0 {
		if entry.PriceMaxUSD > criteria.BudgetMax {
			return 0, false
		}
		score += budgetBonus
	}

	if len(criteria.Purposes) > 0 {
		matches := 0
		for _, p := range criteria.Purposes {
			if slices.Contains(entry.Purposes, p) {
				matches++
			}
		}
		if matches == 0 {
			return 0, false
		}
		score += matches * purposeBonus
	}

	if criteria.BrandPreference != "" {
		if strings.Contains(strings.ToLower(entry.BrandOrigin), strings.ToLower(criteria.BrandPreference)) {
			score += brandBonus
		} else {
			score += brandPenalty
		}
	}

	for _, p := range criteria.Priorities {
		if slices.Contains(entry.Priorities, p) {
			score += priorityBonus
		}
	}

	return score, true
}
