package menu

import (
	"log"
	"math/rand"
	"time"

	"menu-planner/internal/dish"
)

const (
	// MaxAttempts bounds the constrained generation retries before the
	// unconstrained fallback takes over.
	MaxAttempts = 3

	// MinSeasonalPool is the smallest seasonal pool worth planning from:
	// two slots across seven days.
	MinSeasonalPool = 14
)

// Generator fills a weekly menu from a dish catalog. Constraint satisfaction
// is a randomized greedy scan with bounded retries: the catalog is small and
// the quota constraints are loose enough that a few shuffles converge, while
// the attempt cap and the basic fallback guarantee termination.
type Generator struct {
	rules Rules
	rng   *rand.Rand
}

// NewGenerator creates a Generator. A nil rng gets a time-seeded source;
// tests inject a fixed seed.
func NewGenerator(rules Rules, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rules: rules, rng: rng}
}

// Generate produces a weekly menu for the week of the reference date. It
// never fails: an undersized seasonal pool widens to the full catalog, and
// quota exhaustion degrades to an unconstrained menu.
func (g *Generator) Generate(catalog []dish.Dish, ref time.Time) *WeeklyMenu {
	season := SeasonFor(ref)

	lastPool := catalog
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		pool := shuffledCopy(catalog, g.rng)

		seasonal := FilterBySeason(pool, season)
		if len(seasonal) < MinSeasonalPool {
			log.Printf("Not enough dishes for season %q (%d); using the full catalog.", season, len(seasonal))
			seasonal = pool
		}
		lastPool = seasonal

		m, selected := g.fillWeek(seasonal, season, ref)
		if CountByCategory(selected).MeetsWeeklyQuotas() {
			return m
		}
		log.Printf("Attempt %d: weekly category quotas unmet, retrying...", attempt+1)
	}

	log.Println("Retry limit reached. Returning the best possible menu.")
	return g.basicMenu(lastPool, season, ref)
}

// fillWeek runs one constrained attempt over all fourteen cells. The returned
// selection slice mirrors the original bookkeeping: a dish picked by the
// relaxed reuse stage is appended again, so the category counter sees it
// twice.
func (g *Generator) fillWeek(pool []dish.Dish, season Season, ref time.Time) (*WeeklyMenu, []dish.Dish) {
	pools := SplitByMealSlot(shuffledCopy(pool, g.rng), g.rng)

	m := newWeeklyMenu(season, ref)
	used := make(map[string]struct{})
	var selected []dish.Dish

	pick := func(d dish.Dish) {
		used[d.ID] = struct{}{}
		selected = append(selected, d)
	}

	for i, day := range WeekDays {
		entry := DayMenu{Day: day}

		var prevMidday, prevEvening *Meal
		if i > 0 {
			prevMidday = m.Days[i-1].Meals.Midday
			prevEvening = m.Days[i-1].Meals.Evening
		}

		for _, cand := range shuffledCopy(pools.Midday, g.rng) {
			if g.rules.Eligible(cand, used, prevMidday, nil, day) {
				entry.Meals.Midday = MealFromDish(cand)
				pick(cand)
				break
			}
		}
		if entry.Meals.Midday == nil && len(pools.Midday) > 0 {
			if d, ok := g.slotFallback(pools.Midday, used, day); ok {
				meal := MealFromDish(d)
				meal.Fallback = true
				entry.Meals.Midday = meal
				pick(d)
			}
		}

		for _, cand := range shuffledCopy(pools.Evening, g.rng) {
			if !g.rules.Eligible(cand, used, prevEvening, entry.Meals.Midday, day) {
				continue
			}
			candMeal := MealFromDish(cand)
			n := DayNutrients(entry.Meals.Midday, candMeal)
			if n.Calories <= MaxDailyCalories && n.Protein >= MinDailyProtein {
				entry.Meals.Evening = candMeal
				pick(cand)
				break
			}
		}
		if entry.Meals.Evening == nil && len(pools.Evening) > 0 {
			if d, ok := g.slotFallback(pools.Evening, used, day); ok {
				meal := MealFromDish(d)
				meal.Fallback = true
				entry.Meals.Evening = meal
				pick(d)
			}
		}

		m.Days = append(m.Days, entry)
	}

	return m, selected
}

// slotFallback fills a cell the greedy scan could not. Stage one picks a
// random unused dish permitted on the day; stage two drops the unused
// requirement so the cell still gets filled when every permitted dish has
// been placed already. Nutrient bounds are not re-checked here.
func (g *Generator) slotFallback(pool []dish.Dish, used map[string]struct{}, day string) (dish.Dish, bool) {
	var permitted []dish.Dish
	for _, d := range pool {
		if _, taken := used[d.ID]; taken {
			continue
		}
		if g.rules.AllowedOnDay(d, day) {
			permitted = append(permitted, d)
		}
	}
	if len(permitted) > 0 {
		return permitted[g.rng.Intn(len(permitted))], true
	}

	var dayPermitted []dish.Dish
	for _, d := range pool {
		if g.rules.AllowedOnDay(d, day) {
			dayPermitted = append(dayPermitted, d)
		}
	}
	if len(dayPermitted) > 0 {
		return dayPermitted[g.rng.Intn(len(dayPermitted))], true
	}

	return dish.Dish{}, false
}

// basicMenu builds a menu with no cross-day, cross-slot, repetition, or
// nutrient constraints. Day restrictions are still honored whenever any
// permitted dish exists for the slot.
func (g *Generator) basicMenu(pool []dish.Dish, season Season, ref time.Time) *WeeklyMenu {
	pools := SplitByMealSlot(shuffledCopy(pool, g.rng), g.rng)

	m := newWeeklyMenu(season, ref)
	for _, day := range WeekDays {
		entry := DayMenu{Day: day}
		if d, ok := g.randomForDay(pools.Midday, day); ok {
			entry.Meals.Midday = MealFromDish(d)
		}
		if d, ok := g.randomForDay(pools.Evening, day); ok {
			entry.Meals.Evening = MealFromDish(d)
		}
		m.Days = append(m.Days, entry)
	}
	return m
}

func (g *Generator) randomForDay(pool []dish.Dish, day string) (dish.Dish, bool) {
	var permitted []dish.Dish
	for _, d := range pool {
		if g.rules.AllowedOnDay(d, day) {
			permitted = append(permitted, d)
		}
	}
	if len(permitted) > 0 {
		return permitted[g.rng.Intn(len(permitted))], true
	}
	if len(pool) > 0 {
		return pool[g.rng.Intn(len(pool))], true
	}
	return dish.Dish{}, false
}
