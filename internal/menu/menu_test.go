package menu

import (
	"testing"
	"time"

	"menu-planner/internal/dish"
)

func sampleMenu() *WeeklyMenu {
	m := newWeeklyMenu(SeasonSummer, time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC))
	for _, day := range WeekDays {
		m.Days = append(m.Days, DayMenu{Day: day})
	}
	m.Days[0].Meals.Midday = &Meal{DishID: "lentils", Name: "Lentil stew", Category: dish.CategoryLegumes}
	m.Days[0].Meals.Evening = &Meal{DishID: "omelette", Name: "Omelette", Category: dish.CategoryEggs}
	m.Days[1].Meals.Midday = &Meal{DishID: "lentils", Name: "Lentil stew", Category: dish.CategoryLegumes}
	return m
}

func TestReplace(t *testing.T) {
	m := sampleMenu()
	cod := dish.Dish{ID: "cod", Name: "Baked cod", Category: dish.CategoryFish}

	if err := m.Replace("monday", "Evening", cod); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	got := m.Meal("Monday", "evening")
	if got == nil || got.DishID != "cod" {
		t.Fatalf("substituted meal = %+v", got)
	}

	if err := m.Replace("Funday", "evening", cod); err == nil {
		t.Error("expected error for unknown day")
	}
	if err := m.Replace("Monday", "brunch", cod); err == nil {
		t.Error("expected error for unknown slot")
	}
}

func TestMealLookup(t *testing.T) {
	m := sampleMenu()
	if m.Meal("Monday", "midday") == nil {
		t.Error("expected Monday midday meal")
	}
	if m.Meal("Wednesday", "midday") != nil {
		t.Error("unset cell should read as nil")
	}
	if m.Meal("Funday", "midday") != nil {
		t.Error("unknown day should read as nil")
	}
}

func TestUsedDishIDs(t *testing.T) {
	ids := sampleMenu().UsedDishIDs()
	want := []string{"lentils", "omelette"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
