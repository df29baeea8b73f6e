package synth

import (
	"regexp"
	"strings"
)

// Category is the closed store taxonomy. Classification never fails: inputs
// that match nothing land in the grocery bucket.
type Category string

const (
	Convenience   Category = "convenience"
	Supermarket   Category = "supermarket"
	Grocery       Category = "grocery"
	Wholesale     Category = "wholesale"
	FarmersMarket Category = "farmersmarket"
	Pantry        Category = "pantry"
	Mobile        Category = "mobile"
)

// Tier carries the display metadata of one category.
type Tier struct {
	Label      string
	ShortLabel string
	Glyph      rune
	PriceScore float64 // 0.0 (free) to 1.0 (most expensive)
	PriceTier  string
	PriceLabel string // e.g. "$$$$", empty for free
	PriceDots  int    // 0-5 filled dots
	HexColor   string
}

// Hierarchy is the single source of truth for category display metadata.
var Hierarchy = map[Category]Tier{
	Convenience: {
		Label:      "Convenience Store",
		ShortLabel: "Convenience",
		Glyph:      '▴',
		PriceScore: 0.95,
		PriceTier:  "Very High",
		PriceLabel: "$$$$",
		PriceDots:  5,
		HexColor:   "#ef4444",
	},
	Supermarket: {
		Label:      "Supermarket / Chain",
		ShortLabel: "Supermarket",
		Glyph:      '■',
		PriceScore: 0.65,
		PriceTier:  "Moderate-High",
		PriceLabel: "$$$",
		PriceDots:  3,
		HexColor:   "#f59e0b",
	},
	Grocery: {
		Label:      "Independent Grocery",
		ShortLabel: "Grocery",
		Glyph:      '●',
		PriceScore: 0.50,
		PriceTier:  "Moderate",
		PriceLabel: "$$",
		PriceDots:  2,
		HexColor:   "#84cc16",
	},
	Wholesale: {
		Label:      "Wholesale / Club",
		ShortLabel: "Wholesale",
		Glyph:      '◆',
		PriceScore: 0.35,
		PriceTier:  "Low (bulk)",
		PriceLabel: "$",
		PriceDots:  2,
		HexColor:   "#3b82f6",
	},
	FarmersMarket: {
		Label:      "Farmer's Market",
		ShortLabel: "Market",
		Glyph:      '✶',
		PriceScore: 0.25,
		PriceTier:  "Low",
		PriceLabel: "$",
		PriceDots:  1,
		HexColor:   "#8b5cf6",
	},
	Pantry: {
		Label:      "Food Pantry",
		ShortLabel: "Pantry",
		Glyph:      '♥',
		PriceScore: 0.0,
		PriceTier:  "Free",
		PriceLabel: "",
		PriceDots:  0,
		HexColor:   "#10b981",
	},
	Mobile: {
		Label:      "Mobile Food Unit",
		ShortLabel: "Mobile",
		Glyph:      '▸',
		PriceScore: 0.0,
		PriceTier:  "Free",
		PriceLabel: "",
		PriceDots:  0,
		HexColor:   "#06b6d4",
	},
}

// PriceOrder lists categories most-expensive first.
var PriceOrder = []Category{
	Convenience, Supermarket, Grocery, Wholesale, FarmersMarket, Pantry, Mobile,
}

// Chain-name heuristics, applied only when the raw type string resolves
// nothing.
var (
	convenienceChains = regexp.MustCompile(`7.?eleven|circle k|cumberland|speedway|wawa`)
	wholesaleChains   = regexp.MustCompile(`costco|bj'?s|sam'?s club`)
	supermarketChains = regexp.MustCompile(`whole foods|trader joe|wegmans|star market|stop & shop|shaw|hannaford|aldi|market basket`)

	regionalChains = regexp.MustCompile(`stop & shop|shaw|hannaford`)
	clubChains     = regexp.MustCompile(`costco|bj'?s|sam'?s`)
	cornerChains   = regexp.MustCompile(`7.?eleven|circle k|cumberland`)
)

// Classify maps a freeform type/name pair to a category, trying in order:
// exact known-token passthrough, substring match on known category phrases,
// chain-name regex, grocery fallback.
func Classify(rawType, name string) Category {
	t := strings.ToLower(strings.TrimSpace(rawType))
	n := strings.ToLower(strings.TrimSpace(name))

	switch t {
	case "pantry":
		return Pantry
	case "mobile":
		return Mobile
	case "market":
		return FarmersMarket
	}

	switch {
	case strings.Contains(t, "convenience"):
		return Convenience
	case strings.Contains(t, "super store") || t == "supermarket":
		return Supermarket
	case strings.Contains(t, "wholesale") || strings.Contains(t, "club"):
		return Wholesale
	case strings.Contains(t, "farmers") || strings.Contains(t, "farm market"):
		return FarmersMarket
	case strings.Contains(t, "grocery"):
		return Grocery
	}

	switch {
	case convenienceChains.MatchString(n):
		return Convenience
	case wholesaleChains.MatchString(n):
		return Wholesale
	case supermarketChains.MatchString(n):
		return Supermarket
	}

	return Grocery
}

// ChainPriceScore returns a price score override for known chain names. It
// takes precedence over the category's default price score.
func ChainPriceScore(name string) (float64, bool) {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "whole foods"):
		return 0.80, true
	case strings.Contains(n, "trader joe"):
		return 0.45, true
	case strings.Contains(n, "aldi"):
		return 0.30, true
	case strings.Contains(n, "market basket"):
		return 0.35, true
	case regionalChains.MatchString(n):
		return 0.60, true
	case strings.Contains(n, "star market"):
		return 0.65, true
	case clubChains.MatchString(n):
		return 0.35, true
	case cornerChains.MatchString(n):
		return 0.95, true
	}
	return 0, false
}

// DotsForScore converts a price score in [0,1] into 0-5 filled dots.
func DotsForScore(score float64) int {
	d := int(score*5 + 0.5)
	if d < 0 {
		d = 0
	}
	if d > 5 {
		d = 5
	}
	return d
}

// Pricing is the resolved price classification for one store.
type Pricing struct {
	Category  Category
	Score     float64
	Tier      string
	Label     string
	Dots      int
	HexColor  string
	Glyph     rune
	TierLabel string
}

// Enrich classifies a store and resolves its effective price metadata,
// applying the chain-level score override when one matches.
func Enrich(rawType, name string) Pricing {
	cat := Classify(rawType, name)
	tier := Hierarchy[cat]
	score := tier.PriceScore
	dots := tier.PriceDots
	if s, ok := ChainPriceScore(name); ok {
		score = s
		dots = DotsForScore(s)
	}
	return Pricing{
		Category:  cat,
		Score:     score,
		Tier:      tier.PriceTier,
		Label:     tier.PriceLabel,
		Dots:      dots,
		HexColor:  tier.HexColor,
		Glyph:     tier.Glyph,
		TierLabel: tier.Label,
	}
}
