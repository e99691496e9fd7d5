package menu

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"menu-planner/internal/dish"
)

func testDish(id string, cat dish.Category, calories, protein float64) dish.Dish {
	return dish.Dish{
		ID:        id,
		Name:      id,
		Category:  cat,
		MealSlots: []string{"midday", "evening"},
		Seasons:   []string{"all seasons"},
		Nutrition: dish.Nutrition{Calories: calories, Protein: protein},
	}
}

// balancedCatalog can satisfy every weekly quota and every daily nutrient
// bound: any midday/evening pairing lands at 1300 kcal and 56 g protein.
func balancedCatalog() []dish.Dish {
	var out []dish.Dish
	for _, cat := range []dish.Category{
		dish.CategoryEggs, dish.CategoryLegumes, dish.CategoryFish, dish.CategoryMeat,
	} {
		for i := 0; i < 4; i++ {
			out = append(out, testDish(fmt.Sprintf("%s-%d", cat, i), cat, 650, 28))
		}
	}
	return out
}

var monday = time.Date(2025, time.July, 7, 12, 0, 0, 0, time.UTC)

func TestGenerateWeekStructure(t *testing.T) {
	g := NewGenerator(DefaultRules(), rand.New(rand.NewSource(42)))
	m := g.Generate(balancedCatalog(), monday)

	if len(m.Days) != len(WeekDays) {
		t.Fatalf("expected %d days, got %d", len(WeekDays), len(m.Days))
	}
	for i, day := range m.Days {
		if day.Day != WeekDays[i] {
			t.Errorf("day %d = %q, want %q", i, day.Day, WeekDays[i])
		}
		if day.Meals.Midday == nil {
			t.Errorf("%s: midday slot unset", day.Day)
		}
		if day.Meals.Evening == nil {
			t.Errorf("%s: evening slot unset", day.Day)
		}
	}
	if m.Season != SeasonSummer {
		t.Errorf("season = %q, want %q", m.Season, SeasonSummer)
	}
	if m.GeneratedAt != "2025-07-07" {
		t.Errorf("generated_at = %q", m.GeneratedAt)
	}
}

func TestFillWeekConstraints(t *testing.T) {
	g := NewGenerator(DefaultRules(), rand.New(rand.NewSource(7)))
	m, selected := g.fillWeek(balancedCatalog(), SeasonSummer, monday)

	if len(selected) == 0 {
		t.Fatal("no dishes selected")
	}

	seen := make(map[string]string)
	for _, day := range m.Days {
		for slot, meal := range map[string]*Meal{
			SlotMidday:  day.Meals.Midday,
			SlotEvening: day.Meals.Evening,
		} {
			if meal == nil || meal.Fallback {
				continue
			}
			if where, dup := seen[meal.DishID]; dup {
				t.Errorf("dish %q placed twice outside fallback (%s and %s %s)",
					meal.DishID, where, day.Day, slot)
			}
			seen[meal.DishID] = day.Day + " " + slot
		}
	}

	for _, day := range m.Days {
		midday, evening := day.Meals.Midday, day.Meals.Evening
		if midday != nil && evening != nil && !midday.Fallback && !evening.Fallback {
			if midday.Category == evening.Category {
				t.Errorf("%s: both slots share category %q", day.Day, midday.Category)
			}
		}
		if evening != nil && !evening.Fallback {
			n := DayNutrients(midday, evening)
			if n.Calories > MaxDailyCalories {
				t.Errorf("%s: %g kcal exceeds the daily ceiling", day.Day, n.Calories)
			}
			if n.Protein < MinDailyProtein {
				t.Errorf("%s: %g g protein under the daily floor", day.Day, n.Protein)
			}
		}
	}

	for i := 1; i < len(m.Days); i++ {
		prev, cur := m.Days[i-1].Meals.Evening, m.Days[i].Meals.Evening
		if prev == nil || cur == nil || cur.Fallback {
			continue
		}
		if prev.Category == dish.CategoryLegumes && cur.Category == dish.CategoryLegumes {
			t.Errorf("legumes on consecutive evenings (%s, %s)", m.Days[i-1].Day, m.Days[i].Day)
		}
	}
}

func TestGenerateHonorsDayRestrictions(t *testing.T) {
	catalog := append(balancedCatalog(),
		dish.Dish{
			ID:        "rotisserie",
			Name:      "Rotisserie chicken",
			Category:  dish.CategoryMeat,
			MealSlots: []string{"midday", "evening"},
			Seasons:   []string{"all seasons"},
			Nutrition: dish.Nutrition{Calories: 650, Protein: 28},
		})

	for seed := int64(0); seed < 5; seed++ {
		g := NewGenerator(DefaultRules(), rand.New(rand.NewSource(seed)))
		m := g.Generate(catalog, monday)

		for _, day := range m.Days {
			if day.Day == "Saturday" || day.Day == "Sunday" {
				continue
			}
			for _, meal := range []*Meal{day.Meals.Midday, day.Meals.Evening} {
				if meal != nil && meal.DishID == "rotisserie" {
					t.Errorf("seed %d: weekend-only dish placed on %s", seed, day.Day)
				}
			}
		}
	}
}

func TestGenerateTerminatesOnUnsatisfiableQuotas(t *testing.T) {
	// No fish dish exists, so the weekly quota can never be met and every
	// constrained attempt fails. The fallback must still fill the week.
	var catalog []dish.Dish
	for _, cat := range []dish.Category{
		dish.CategoryEggs, dish.CategoryLegumes, dish.CategoryMeat, dish.CategoryOther,
	} {
		for i := 0; i < 5; i++ {
			catalog = append(catalog, testDish(fmt.Sprintf("%s-%d", cat, i), cat, 650, 28))
		}
	}

	g := NewGenerator(DefaultRules(), rand.New(rand.NewSource(3)))
	m := g.Generate(catalog, monday)

	if len(m.Days) != len(WeekDays) {
		t.Fatalf("expected %d days, got %d", len(WeekDays), len(m.Days))
	}
	for _, day := range m.Days {
		if day.Meals.Midday == nil || day.Meals.Evening == nil {
			t.Errorf("%s: fallback left a slot unset", day.Day)
		}
	}
}

func TestGenerateWidensUndersizedSeasonalPool(t *testing.T) {
	// Only two winter dishes; the seasonal pool is under the minimum and the
	// full catalog takes over, keeping the season label.
	catalog := balancedCatalog()
	catalog[0].Seasons = []string{"winter"}
	catalog[1].Seasons = []string{"winter"}
	for i := 2; i < len(catalog); i++ {
		catalog[i].Seasons = []string{"summer"}
	}

	january := time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(DefaultRules(), rand.New(rand.NewSource(11)))
	m := g.Generate(catalog, january)

	if m.Season != SeasonWinter {
		t.Errorf("season = %q, want %q", m.Season, SeasonWinter)
	}
	for _, day := range m.Days {
		if day.Meals.Midday == nil || day.Meals.Evening == nil {
			t.Errorf("%s: widened pool should still fill the week", day.Day)
		}
	}
}
