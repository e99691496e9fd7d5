package menu

import (
	"strings"

	"menu-planner/internal/dish"
)

// DayRestrictions maps exact dish names to the weekdays they may be served
// on. A dish absent from the table is unrestricted.
type DayRestrictions map[string][]string

// DefaultRestrictions returns the built-in availability table.
func DefaultRestrictions() DayRestrictions {
	return DayRestrictions{
		"Rotisserie chicken": {"Saturday", "Sunday"},
	}
}

// Rules bundles the static scheduling constraints consulted by the allocator.
type Rules struct {
	Restrictions DayRestrictions
}

// DefaultRules returns the rule set used in production.
func DefaultRules() Rules {
	return Rules{Restrictions: DefaultRestrictions()}
}

// AllowedOnDay reports whether the dish may be scheduled on the given
// weekday. Weekday comparison is case-insensitive; dish-name lookup is exact.
func (r Rules) AllowedOnDay(d dish.Dish, day string) bool {
	allowed, ok := r.Restrictions[d.Name]
	if !ok {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(a, day) {
			return true
		}
	}
	return false
}

// Eligible decides whether a candidate may fill a (day, slot) cell.
//
// prevSameSlot is the dish in the same slot on the previous day (nil on
// Monday); sameDayOther is the dish already bound to the day's other slot
// (nil while filling midday). Rejections, in order: dish already used this
// week; legumes following legumes in the same slot (only legumes carry the
// consecutive-day rule); same category as the day's other slot; day
// availability.
func (r Rules) Eligible(cand dish.Dish, selected map[string]struct{}, prevSameSlot, sameDayOther *Meal, day string) bool {
	if _, used := selected[cand.ID]; used {
		return false
	}
	if prevSameSlot != nil &&
		cand.Category == dish.CategoryLegumes &&
		prevSameSlot.Category == dish.CategoryLegumes {
		return false
	}
	if sameDayOther != nil && cand.Category == sameDayOther.Category {
		return false
	}
	return r.AllowedOnDay(cand, day)
}
