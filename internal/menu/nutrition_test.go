package menu

import (
	"testing"

	"menu-planner/internal/dish"
)

func TestDayNutrients(t *testing.T) {
	midday := &Meal{Calories: 650, Protein: 30}
	evening := &Meal{Calories: 400, Protein: 20}

	n := DayNutrients(midday, evening)
	if n.Calories != 1050 || n.Protein != 50 {
		t.Errorf("got %+v, want calories=1050 protein=50", n)
	}

	n = DayNutrients(midday, nil)
	if n.Calories != 650 || n.Protein != 30 {
		t.Errorf("unset slot should contribute zero, got %+v", n)
	}
}

func TestCountByCategory(t *testing.T) {
	selected := []dish.Dish{
		{Category: dish.CategoryEggs},
		{Category: dish.CategoryEggs},
		{Category: dish.CategoryLegumes},
		{Category: dish.CategoryFish},
		{Category: dish.CategoryMeat},
		{Category: dish.CategoryOther},
	}

	c := CountByCategory(selected)
	if c.Eggs != 2 || c.Legumes != 1 || c.Fish != 1 || c.Meat != 1 {
		t.Errorf("unexpected counts: %+v", c)
	}
}

func TestMeetsWeeklyQuotas(t *testing.T) {
	cases := []struct {
		name string
		c    CategoryCounts
		want bool
	}{
		{"all met exactly", CategoryCounts{Eggs: 2, Legumes: 2, Fish: 1, Meat: 2}, true},
		{"surplus", CategoryCounts{Eggs: 3, Legumes: 4, Fish: 2, Meat: 3}, true},
		{"missing fish", CategoryCounts{Eggs: 2, Legumes: 2, Fish: 0, Meat: 2}, false},
		{"missing legumes", CategoryCounts{Eggs: 2, Legumes: 1, Fish: 1, Meat: 2}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.MeetsWeeklyQuotas(); got != tc.want {
				t.Errorf("MeetsWeeklyQuotas() = %v, want %v", got, tc.want)
			}
		})
	}
}
