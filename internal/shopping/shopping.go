package shopping

import (
	"strings"

	"menu-planner/internal/dish"
	"menu-planner/internal/menu"
)

// Item is one merged shopping-list entry. When contributing ingredients carry
// the same unit their quantities are summed; on a unit mismatch (or a missing
// quantity) the stored quantity is left as-is and Count is bumped instead.
// That drops volume information for the mismatched contribution; the count
// tells the shopper how many dishes want the ingredient.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Count    int     `json:"count"`
}

// List maps a food-category label to its merged items.
type List map[string][]Item

// Buckets lists the food categories in the fixed order they are matched and
// rendered. "other" collects everything no keyword set claims.
var Buckets = []string{"fruits", "vegetables", "proteins", "dairy", "grains", "other"}

var bucketKeywords = map[string][]string{
	"fruits":     {"apple", "banana", "orange", "fruit", "peach", "cherry", "strawberry", "melon", "watermelon"},
	"vegetables": {"lettuce", "tomato", "onion", "carrot", "spinach", "cucumber", "pepper", "eggplant", "zucchini"},
	"proteins":   {"meat", "chicken", "beef", "pork", "fish", "egg", "legume", "tofu", "tempeh"},
	"dairy":      {"milk", "cheese", "yogurt", "cream", "butter"},
	"grains":     {"rice", "pasta", "bread", "flour", "quinoa", "oats"},
}

// Build derives a categorized shopping list from a weekly menu and the full
// catalog. The menu stores dish references only, so every placed ID is
// resolved back to its catalog record; IDs no longer in the catalog are
// skipped silently. Given the same menu and catalog the output is identical
// call after call: merge order follows the fixed day/slot walk.
func Build(m *menu.WeeklyMenu, catalog []dish.Dish) List {
	merged := make(map[string]*Item)
	var order []string

	for _, day := range m.Days {
		for _, meal := range []*menu.Meal{day.Meals.Midday, day.Meals.Evening} {
			if meal == nil {
				continue
			}
			d, ok := dish.ByID(catalog, meal.DishID)
			if !ok {
				continue
			}
			for _, ing := range d.Ingredients {
				key := strings.ToLower(ing.Name)
				existing, seen := merged[key]
				if !seen {
					merged[key] = &Item{
						Name:     ing.Name,
						Quantity: ing.Quantity,
						Unit:     ing.Unit,
						Count:    1,
					}
					order = append(order, key)
					continue
				}
				if ing.Unit == existing.Unit && ing.Quantity > 0 && existing.Quantity > 0 {
					existing.Quantity += ing.Quantity
				} else {
					existing.Count++
				}
			}
		}
	}

	list := make(List, len(Buckets))
	for _, b := range Buckets {
		list[b] = nil
	}
	for _, key := range order {
		item := merged[key]
		b := bucketFor(key)
		list[b] = append(list[b], *item)
	}
	return list
}

// bucketFor classifies an ingredient name by keyword, first match in fixed
// bucket order wins.
func bucketFor(name string) string {
	lower := strings.ToLower(name)
	for _, b := range Buckets {
		for _, kw := range bucketKeywords[b] {
			if strings.Contains(lower, kw) {
				return b
			}
		}
	}
	return "other"
}
