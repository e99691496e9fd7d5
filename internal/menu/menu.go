package menu

import (
	"fmt"
	"strings"
	"time"

	"menu-planner/internal/dish"
)

// WeekDays is the planning horizon in fixed order, Monday first.
var WeekDays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Meal slot names within a day.
const (
	SlotMidday  = dish.SlotMidday
	SlotEvening = dish.SlotEvening
)

// Meal is a lightweight reference to a placed dish. Ingredient data stays in
// the catalog; the shopping-list builder resolves it back by DishID.
type Meal struct {
	DishID   string        `json:"dish_id"`
	Name     string        `json:"name"`
	Category dish.Category `json:"category"`
	Calories float64       `json:"calories"`
	Protein  float64       `json:"protein"`

	// Fallback marks a cell filled by the two-stage slot fallback, which
	// does not re-check the daily nutrient bounds.
	Fallback bool `json:"fallback,omitempty"`
}

// MealFromDish builds the stored reference for a placed dish.
func MealFromDish(d dish.Dish) *Meal {
	return &Meal{
		DishID:   d.ID,
		Name:     d.Name,
		Category: d.Category,
		Calories: d.Nutrition.Calories,
		Protein:  d.Nutrition.Protein,
	}
}

// Meals holds a day's two slot bindings. A nil slot means the candidate pool
// for that slot was empty.
type Meals struct {
	Midday  *Meal `json:"midday"`
	Evening *Meal `json:"evening"`
}

// DayMenu is one weekday of the plan.
type DayMenu struct {
	Day   string `json:"day"`
	Meals Meals  `json:"meals"`
}

// WeeklyMenu is the allocator's output: seven days, Monday to Sunday.
type WeeklyMenu struct {
	GeneratedAt string    `json:"generated_at"`
	Season      Season    `json:"season"`
	Days        []DayMenu `json:"days"`
}

func newWeeklyMenu(season Season, ref time.Time) *WeeklyMenu {
	return &WeeklyMenu{
		GeneratedAt: ref.Format("2006-01-02"),
		Season:      season,
		Days:        make([]DayMenu, 0, len(WeekDays)),
	}
}

// Day returns the entry for the given weekday name, or nil.
func (m *WeeklyMenu) Day(day string) *DayMenu {
	for i := range m.Days {
		if strings.EqualFold(m.Days[i].Day, day) {
			return &m.Days[i]
		}
	}
	return nil
}

// Replace substitutes one cell of the menu with another dish. The menu is
// otherwise immutable after generation.
func (m *WeeklyMenu) Replace(day, slot string, d dish.Dish) error {
	entry := m.Day(day)
	if entry == nil {
		return fmt.Errorf("unknown day %q", day)
	}
	switch strings.ToLower(slot) {
	case SlotMidday:
		entry.Meals.Midday = MealFromDish(d)
	case SlotEvening:
		entry.Meals.Evening = MealFromDish(d)
	default:
		return fmt.Errorf("unknown meal slot %q", slot)
	}
	return nil
}

// Meal returns the binding for one cell, or nil when the cell is unset or the
// day/slot names are unknown.
func (m *WeeklyMenu) Meal(day, slot string) *Meal {
	entry := m.Day(day)
	if entry == nil {
		return nil
	}
	switch strings.ToLower(slot) {
	case SlotMidday:
		return entry.Meals.Midday
	case SlotEvening:
		return entry.Meals.Evening
	}
	return nil
}

// UsedDishIDs returns the distinct dish IDs placed in the menu, in day order.
func (m *WeeklyMenu) UsedDishIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, day := range m.Days {
		for _, meal := range []*Meal{day.Meals.Midday, day.Meals.Evening} {
			if meal == nil {
				continue
			}
			if _, ok := seen[meal.DishID]; ok {
				continue
			}
			seen[meal.DishID] = struct{}{}
			ids = append(ids, meal.DishID)
		}
	}
	return ids
}
