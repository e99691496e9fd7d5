package dish

import "strings"

// Category is the closed set of dish categories tracked by the planner.
// Unrecognized category strings are normalized to CategoryOther at ingestion
// time so downstream counting never has to guess.
type Category string

const (
	CategoryEggs    Category = "eggs"
	CategoryLegumes Category = "legumes"
	CategoryFish    Category = "fish"
	CategoryMeat    Category = "meat"
	CategoryOther   Category = "other"
)

// Meal slot names used in dish metadata.
const (
	SlotMidday  = "midday"
	SlotEvening = "evening"
)

// ParseCategory maps a raw category string onto the closed enumeration.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryEggs:
		return CategoryEggs
	case CategoryLegumes:
		return CategoryLegumes
	case CategoryFish:
		return CategoryFish
	case CategoryMeat:
		return CategoryMeat
	default:
		return CategoryOther
	}
}

// Nutrition holds the per-serving nutritional values the planner cares about.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// Ingredient is one requirement of a dish. Quantity and Unit are optional;
// a zero quantity means "not specified".
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// Dish is an immutable catalog entry.
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    Category     `json:"category"`
	MealSlots   []string     `json:"meal_slots"`
	Seasons     []string     `json:"seasons"`
	Tags        []string     `json:"tags"`
	Nutrition   Nutrition    `json:"nutrition"`
	Ingredients []Ingredient `json:"ingredients"`
}

// HasSlot reports whether the dish may be served in the given meal slot.
func (d Dish) HasSlot(slot string) bool {
	for _, s := range d.MealSlots {
		if strings.EqualFold(s, slot) {
			return true
		}
	}
	return false
}

// HasTag reports whether the dish carries the given tag, case-insensitively.
func (d Dish) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Normalize returns a copy of the dish with its category folded onto the
// closed enumeration. Called at every ingestion boundary (catalog load,
// repository read, importer).
func (d Dish) Normalize() Dish {
	d.Category = ParseCategory(string(d.Category))
	return d
}
