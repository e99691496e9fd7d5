package menu

import (
	"math/rand"

	"menu-planner/internal/dish"
)

// LightCalorieThreshold is the calorie bound under which a dish counts as
// light for evening placement even without the "light" tag.
const LightCalorieThreshold = 400

// SlotPools holds the candidate pools for the two tracked meal slots.
type SlotPools struct {
	Midday  []dish.Dish
	Evening []dish.Dish
}

// SplitByMealSlot partitions a pool into midday and evening candidates. A dish
// may land in both pools; dishes serving neither slot (snacks) are dropped.
// Light dishes are front-inserted into the evening pool before both pools are
// shuffled, so the priority only biases ties the shuffle happens to preserve.
func SplitByMealSlot(dishes []dish.Dish, rng *rand.Rand) SlotPools {
	var pools SlotPools
	for _, d := range dishes {
		if d.HasSlot(dish.SlotMidday) {
			pools.Midday = append(pools.Midday, d)
		}
		if d.HasSlot(dish.SlotEvening) {
			if isLight(d) {
				pools.Evening = append([]dish.Dish{d}, pools.Evening...)
			} else {
				pools.Evening = append(pools.Evening, d)
			}
		}
	}

	shuffleDishes(pools.Midday, rng)
	shuffleDishes(pools.Evening, rng)
	return pools
}

func isLight(d dish.Dish) bool {
	return d.HasTag("light") || d.Nutrition.Calories < LightCalorieThreshold
}

// shuffleDishes permutes the slice in place (Fisher-Yates).
func shuffleDishes(dishes []dish.Dish, rng *rand.Rand) {
	rng.Shuffle(len(dishes), func(i, j int) {
		dishes[i], dishes[j] = dishes[j], dishes[i]
	})
}

// shuffledCopy returns a new shuffled slice, leaving the input untouched.
func shuffledCopy(dishes []dish.Dish, rng *rand.Rand) []dish.Dish {
	out := make([]dish.Dish, len(dishes))
	copy(out, dishes)
	shuffleDishes(out, rng)
	return out
}
