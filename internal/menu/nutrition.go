package menu

import "menu-planner/internal/dish"

// Daily nutrient bounds checked when binding the evening slot.
const (
	MaxDailyCalories = 1400
	MinDailyProtein  = 40
)

// Weekly category quotas the primary generation path must meet.
const (
	MinWeeklyEggs    = 2
	MinWeeklyLegumes = 2
	MinWeeklyFish    = 1
	MinWeeklyMeat    = 2
)

// DayNutrients sums calories and protein across a day's two slots. An unset
// slot contributes zero.
func DayNutrients(midday, evening *Meal) dish.Nutrition {
	var n dish.Nutrition
	if midday != nil {
		n.Calories += midday.Calories
		n.Protein += midday.Protein
	}
	if evening != nil {
		n.Calories += evening.Calories
		n.Protein += evening.Protein
	}
	return n
}

// CategoryCounts tallies the quota-tracked categories across a selection.
type CategoryCounts struct {
	Eggs    int
	Legumes int
	Fish    int
	Meat    int
}

// CountByCategory counts the selected dishes per quota-tracked category.
// Dishes outside the four tracked categories are ignored.
func CountByCategory(selected []dish.Dish) CategoryCounts {
	var c CategoryCounts
	for _, d := range selected {
		switch d.Category {
		case dish.CategoryEggs:
			c.Eggs++
		case dish.CategoryLegumes:
			c.Legumes++
		case dish.CategoryFish:
			c.Fish++
		case dish.CategoryMeat:
			c.Meat++
		}
	}
	return c
}

// MeetsWeeklyQuotas reports whether every weekly category minimum is met.
func (c CategoryCounts) MeetsWeeklyQuotas() bool {
	return c.Eggs >= MinWeeklyEggs &&
		c.Legumes >= MinWeeklyLegumes &&
		c.Fish >= MinWeeklyFish &&
		c.Meat >= MinWeeklyMeat
}
