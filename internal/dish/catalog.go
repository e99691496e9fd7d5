package dish

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

type catalogFile struct {
	Dishes []Dish `json:"dishes"`
}

// LoadCatalog reads a dish catalog from a JSON file on disk. Categories are
// normalized while loading so the rest of the system only ever sees the
// closed enumeration.
func LoadCatalog(filePath string) ([]Dish, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", filePath, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	dishes := make([]Dish, len(file.Dishes))
	for i, d := range file.Dishes {
		dishes[i] = d.Normalize()
	}
	return dishes, nil
}

// ByID returns the dish with the given ID, or false when it is not present.
func ByID(dishes []Dish, id string) (Dish, bool) {
	for _, d := range dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

// FilterCriteria narrows a catalog. Zero values leave the dimension open.
type FilterCriteria struct {
	Category    Category
	Slot        string
	Season      string
	Tag         string
	MaxCalories float64
}

// Filter returns the dishes matching every set criterion.
func Filter(dishes []Dish, c FilterCriteria) []Dish {
	var out []Dish
	for _, d := range dishes {
		if c.Category != "" && d.Category != c.Category {
			continue
		}
		if c.Slot != "" && !d.HasSlot(c.Slot) {
			continue
		}
		if c.Season != "" && !matchesSeason(d, c.Season) {
			continue
		}
		if c.Tag != "" && !d.HasTag(c.Tag) {
			continue
		}
		if c.MaxCalories > 0 && d.Nutrition.Calories > c.MaxCalories {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesSeason(d Dish, season string) bool {
	for _, s := range d.Seasons {
		if strings.EqualFold(s, season) || strings.EqualFold(s, "all seasons") {
			return true
		}
	}
	return false
}

// Similar returns substitution candidates for a reference dish: same category,
// same primary meal slot, the reference itself excluded, ordered by calorie
// distance so the closest swap comes first.
func Similar(dishes []Dish, ref Dish) []Dish {
	crit := FilterCriteria{Category: ref.Category}
	if len(ref.MealSlots) > 0 {
		crit.Slot = ref.MealSlots[0]
	}

	candidates := Filter(dishes, crit)
	out := candidates[:0]
	for _, d := range candidates {
		if d.ID != ref.ID {
			out = append(out, d)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di := math.Abs(out[i].Nutrition.Calories - ref.Nutrition.Calories)
		dj := math.Abs(out[j].Nutrition.Calories - ref.Nutrition.Calories)
		return di < dj
	})
	return out
}
