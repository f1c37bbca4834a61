package catalog

import "github.com/carvisor/carvisor/core"

// builtinEntries returns the default car table. Order matters: ranking
// ties are broken by position here.
func builtinEntries() []core.CatalogEntry {
	return []core.CatalogEntry{
		{
			Name:         "Toyota Camry",
			PriceMinUSD:  25000,
			PriceMaxUSD:  35000,
			FuelEconomy:  "Excellent (28-38 mpg)",
			Size:         "Mid-size sedan (5 passengers)",
			Purposes:     []string{"daily_commute", "family", "business"},
			Priorities:   []string{"fuel_economy", "reliability", "smooth_ride"},
			BrandOrigin:  "Japanese",
			SafetyRating: "5-star",
			Technology:   "Standard infotainment, Apple CarPlay",
			Style:        "Conservative, elegant",
			Drivetrain:   "FWD",
			BodyType:     "sedan",
		},
		{
			Name:         "Honda CR-V",
			PriceMinUSD:  28000,
			PriceMaxUSD:  38000,
			FuelEconomy:  "Very Good (27-32 mpg)",
			Size:         "Compact SUV (5 passengers, large cargo)",
			Purposes:     []string{"family", "daily_commute", "leisure"},
			Priorities:   []string{"cargo_space", "reliability", "safety"},
			BrandOrigin:  "Japanese",
			SafetyRating: "5-star",
			Technology:   "Honda Sensing, large touchscreen",
			Style:        "Practical, family-friendly",
			Drivetrain:   "AWD available",
			BodyType:     "compact_suv",
		},
		{
			Name:         "Hyundai Elantra",
			PriceMinUSD:  20000,
			PriceMaxUSD:  28000,
			FuelEconomy:  "Excellent (31-41 mpg)",
			Size:         "Compact sedan (5 passengers)",
			Purposes:     []string{"daily_commute", "budget_friendly"},
			Priorities:   []string{"fuel_economy", "technology", "warranty"},
			BrandOrigin:  "Korean",
			SafetyRating: "5-star",
			Technology:   "Large touchscreen, wireless charging",
			Style:        "Youthful, modern",
			Drivetrain:   "FWD",
			BodyType:     "sedan",
		},
		{
			Name:         "BMW 3 Series",
			PriceMinUSD:  35000,
			PriceMaxUSD:  55000,
			FuelEconomy:  "Good (23-30 mpg)",
			Size:         "Luxury sedan (5 passengers)",
			Purposes:     []string{"business", "luxury", "performance"},
			Priorities:   []string{"driving_feel", "luxury", "technology"},
			BrandOrigin:  "German",
			SafetyRating: "5-star",
			Technology:   "Premium iDrive system, premium audio",
			Style:        "Sporty, elegant, luxurious",
			Drivetrain:   "RWD/AWD",
			BodyType:     "sedan",
		},
		{
			Name:         "Ford F-150",
			PriceMinUSD:  32000,
			PriceMaxUSD:  70000,
			FuelEconomy:  "Fair (20-24 mpg)",
			Size:         "Full-size pickup (6 passengers, large cargo)",
			Purposes:     []string{"work", "towing", "family"},
			Priorities:   []string{"cargo_space", "towing", "durability"},
			BrandOrigin:  "American",
			SafetyRating: "5-star",
			Technology:   "SYNC 4, large touchscreen",
			Style:        "Rugged, powerful",
			Drivetrain:   "4WD available",
			BodyType:     "pickup",
		},
		{
			Name:         "Tesla Model 3",
			PriceMinUSD:  38000,
			PriceMaxUSD:  55000,
			FuelEconomy:  "Excellent (Electric - 120+ MPGe)",
			Size:         "Mid-size sedan (5 passengers)",
			Purposes:     []string{"daily_commute", "tech_enthusiast", "eco_friendly"},
			Priorities:   []string{"technology", "fuel_economy", "performance"},
			BrandOrigin:  "American (Electric)",
			SafetyRating: "5-star",
			Technology:   "Autopilot, large touchscreen, OTA updates",
			Style:        "Modern, minimalist, futuristic",
			Drivetrain:   "RWD/AWD",
			BodyType:     "sedan",
		},
		{
			Name:         "Mazda CX-5",
			PriceMinUSD:  27000,
			PriceMaxUSD:  37000,
			FuelEconomy:  "Good (25-31 mpg)",
			Size:         "Compact SUV (5 passengers, good cargo)",
			Purposes:     []string{"family", "leisure", "daily_commute"},
			Priorities:   []string{"driving_feel", "style", "quality"},
			BrandOrigin:  "Japanese",
			SafetyRating: "5-star",
			Technology:   "Mazda Connect, Bose audio available",
			Style:        "Elegant, sporty, sophisticated",
			Drivetrain:   "AWD available",
			BodyType:     "compact_suv",
		},
		{
			Name:         "Subaru Outback",
			PriceMinUSD:  29000,
			PriceMaxUSD:  40000,
			FuelEconomy:  "Good (26-33 mpg)",
			Size:         "Mid-size wagon/SUV (5 passengers, large cargo)",
			Purposes:     []string{"family", "outdoor_adventure", "daily_commute", "all_weather"},
			Priorities:   []string{"reliability", "safety", "cargo_space", "all_weather"},
			BrandOrigin:  "Japanese",
			SafetyRating: "5-star",
			Technology:   "EyeSight, Starlink system",
			Style:        "Rugged, practical, outdoorsy",
			Drivetrain:   "Standard AWD",
			BodyType:     "wagon",
		},
		{
			Name:         "Kia Telluride",
			PriceMinUSD:  35000,
			PriceMaxUSD:  50000,
			FuelEconomy:  "Fair (20-26 mpg)",
			Size:         "Large SUV (8 passengers, massive cargo)",
			Purposes:     []string{"large_family", "towing", "road_trips"},
			Priorities:   []string{"passenger_space", "cargo_space", "comfort", "value"},
			BrandOrigin:  "Korean",
			SafetyRating: "5-star",
			Technology:   "Large touchscreen, premium audio available",
			Style:        "Bold, premium, family-focused",
			Drivetrain:   "AWD available",
			BodyType:     "large_suv",
		},
	}
}
