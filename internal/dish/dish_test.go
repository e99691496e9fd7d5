package dish

import "testing"

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"eggs":    CategoryEggs,
		"Legumes": CategoryLegumes,
		" fish ":  CategoryFish,
		"MEAT":    CategoryMeat,
		"other":   CategoryOther,
		"dessert": CategoryOther,
		"":        CategoryOther,
	}
	for in, want := range cases {
		if got := ParseCategory(in); got != want {
			t.Errorf("ParseCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasSlot(t *testing.T) {
	d := Dish{MealSlots: []string{"Midday"}}
	if !d.HasSlot("midday") {
		t.Error("slot match should be case-insensitive")
	}
	if d.HasSlot("evening") {
		t.Error("unexpected evening slot")
	}
}

func TestHasTag(t *testing.T) {
	d := Dish{Tags: []string{"Light", "quick"}}
	if !d.HasTag("light") || !d.HasTag("QUICK") {
		t.Error("tag match should be case-insensitive")
	}
	if d.HasTag("spicy") {
		t.Error("unexpected tag")
	}
}

func TestNormalize(t *testing.T) {
	d := Dish{Category: "Seafood"}
	if got := d.Normalize().Category; got != CategoryOther {
		t.Errorf("Normalize folded %q to %q, want %q", d.Category, got, CategoryOther)
	}
	if d.Category != "Seafood" {
		t.Error("Normalize should not mutate the receiver")
	}
}
