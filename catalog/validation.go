package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/carvisor/carvisor/core"
)

// Sentinel errors for catalog validation.
var (
	ErrEmptyCatalog    = errors.New("catalog has no entries")
	ErrMissingName     = errors.New("entry name is required")
	ErrInvalidPrice    = errors.New("entry price range is invalid")
	ErrUnknownPurpose  = errors.New("unknown purpose tag")
	ErrUnknownPriority = errors.New("unknown priority tag")
	ErrUnknownOrigin   = errors.New("unknown brand origin")
)

// ValidPurposes enumerates the purpose tags an entry or criteria may carry.
var ValidPurposes = []string{
	"daily_commute", "city_driving", "highway_cruising", "short_trips",
	"family", "school_runs", "family_road_trips", "child_transport",
	"business", "work_commute", "client_meetings", "professional_image",
	"leisure", "weekend_trips", "camping_outdoors", "road_trips",
	"towing", "hauling_cargo", "work", "construction_work",
	"luxury", "performance_driving", "performance", "tech_enthusiast", "eco_friendly",
	"budget_friendly", "outdoor_adventure", "all_weather", "large_family",
}

// ValidPriorities enumerates the priority tags an entry or criteria may carry.
var ValidPriorities = []string{
	"fuel_economy", "low_maintenance", "reliability", "durability", "resale_value",
	"driving_feel", "acceleration", "handling", "power", "sportiness",
	"smooth_ride", "quiet_cabin", "comfortable_seats", "spacious_interior",
	"cargo_space", "passenger_space", "storage_solutions", "versatility",
	"technology", "infotainment", "connectivity", "driver_assistance",
	"safety", "crash_protection", "driver_aids", "visibility",
	"style", "design", "luxury", "prestige", "uniqueness", "quality",
	"affordability", "warranty", "dealer_network", "towing", "all_weather",
	"comfort", "value", "performance",
}

// ValidBrandOrigins enumerates accepted brand origins.
var ValidBrandOrigins = []string{
	"Japanese", "Korean", "Chinese", "German", "Italian", "French",
	"British", "Swedish", "American", "American (Electric)",
}

// ValidateEntry checks a catalog entry for structural problems.
func ValidateEntry(entry *core.CatalogEntry) error {
	if entry.Name == "" {
		return ErrMissingName
	}
	if entry.PriceMinUSD <= 0 || entry.PriceMaxUSD < entry.PriceMinUSD {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidPrice, entry.PriceMinUSD, entry.PriceMaxUSD)
	}
	for _, p := range entry.Purposes {
		if !slices.Contains(ValidPurposes, p) {
			return fmt.Errorf("%w: %q", ErrUnknownPurpose, p)
		}
	}
	for _, p := range entry.Priorities {
		if !slices.Contains(ValidPriorities, p) {
			return fmt.Errorf("%w: %q", ErrUnknownPriority, p)
		}
	}
	if entry.BrandOrigin != "" && !slices.Contains(ValidBrandOrigins, entry.BrandOrigin) {
		return fmt.Errorf("%w: %q", ErrUnknownOrigin, entry.BrandOrigin)
	}
	return nil
}
