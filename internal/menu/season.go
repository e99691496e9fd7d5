package menu

import (
	"strings"
	"time"

	"menu-planner/internal/dish"
)

// Season is one of the four calendar buckets used to filter dish eligibility.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"

	// SeasonAll is the sentinel a dish uses to opt out of seasonal filtering.
	SeasonAll = "all seasons"
)

var seasonMonths = map[Season][]time.Month{
	SeasonWinter: {time.December, time.January, time.February, time.March},
	SeasonSpring: {time.April, time.May},
	SeasonSummer: {time.June, time.July, time.August, time.September},
	SeasonAutumn: {time.October, time.November},
}

// SeasonFor determines the active season for a reference date.
func SeasonFor(ref time.Time) Season {
	month := ref.Month()
	for season, months := range seasonMonths {
		for _, m := range months {
			if m == month {
				return season
			}
		}
	}
	return SeasonSummer
}

// FilterBySeason keeps the dishes valid for the given season or marked
// "all seasons". An empty result is valid; the generator widens the pool.
func FilterBySeason(dishes []dish.Dish, season Season) []dish.Dish {
	var out []dish.Dish
	for _, d := range dishes {
		for _, s := range d.Seasons {
			if strings.EqualFold(s, string(season)) || strings.EqualFold(s, SeasonAll) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
