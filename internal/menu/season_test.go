package menu

import (
	"testing"
	"time"

	"menu-planner/internal/dish"
)

func TestSeasonFor(t *testing.T) {
	cases := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonWinter},
		{time.March, SeasonWinter},
		{time.April, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.September, SeasonSummer},
		{time.October, SeasonAutumn},
		{time.November, SeasonAutumn},
		{time.December, SeasonWinter},
	}

	for _, tc := range cases {
		t.Run(tc.month.String(), func(t *testing.T) {
			ref := time.Date(2025, tc.month, 15, 0, 0, 0, 0, time.UTC)
			if got := SeasonFor(ref); got != tc.want {
				t.Errorf("SeasonFor(%s) = %q, want %q", tc.month, got, tc.want)
			}
		})
	}
}

func TestFilterBySeason(t *testing.T) {
	dishes := []dish.Dish{
		{ID: "a", Seasons: []string{"winter"}},
		{ID: "b", Seasons: []string{"summer"}},
		{ID: "c", Seasons: []string{"all seasons"}},
		{ID: "d", Seasons: []string{"Winter", "spring"}},
		{ID: "e"},
	}

	got := FilterBySeason(dishes, SeasonWinter)
	if len(got) != 3 {
		t.Fatalf("expected 3 winter dishes, got %d", len(got))
	}
	ids := map[string]bool{}
	for _, d := range got {
		ids[d.ID] = true
	}
	for _, want := range []string{"a", "c", "d"} {
		if !ids[want] {
			t.Errorf("expected dish %q in winter pool", want)
		}
	}
}

func TestFilterBySeasonEmptyResult(t *testing.T) {
	dishes := []dish.Dish{{ID: "a", Seasons: []string{"summer"}}}
	if got := FilterBySeason(dishes, SeasonWinter); len(got) != 0 {
		t.Errorf("expected empty pool, got %d dishes", len(got))
	}
}
