package filter

import (
	"testing"
	"time"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/nutrition"
)

// testCollection builds a small catalog spanning all three calorie
// categories.
func testCollection(t *testing.T) *catalog.Collection {
	t.Helper()

	c := catalog.New()
	add := func(key, name, desc, calories string) {
		d := &catalog.Dish{
			Name:        name,
			Description: desc,
			Nutrition:   []catalog.NutritionFact{{Nutrient: "Calories", Value: calories}},
		}
		if err := c.Add(key, d); err != nil {
			t.Fatalf("Add(%q): %v", key, err)
		}
	}

	add("adobo", "Chicken Adobo", "Braised chicken in soy sauce and vinegar.", "350 kcal")
	add("sinigang", "Pork Sinigang", "Sour tamarind soup with pork.", "250 kcal")
	add("lechon", "Lechon Kawali", "Crispy deep-fried pork belly.", "470 kcal")
	add("tinola", "Chicken Tinola", "Ginger broth with chicken and papaya.", "220 kcal")
	return c
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyIdentity(t *testing.T) {
	c := testCollection(t)
	got := Apply(c, "", nutrition.CategoryAll)
	if !equalKeys(got, c.Keys()) {
		t.Errorf("identity filter returned %v, want %v", got, c.Keys())
	}
}

func TestApplySearchMatchesNameAndDescription(t *testing.T) {
	c := testCollection(t)

	// "chicken" occurs in the adobo and tinola names.
	got := Apply(c, "chicken", nutrition.CategoryAll)
	if !equalKeys(got, []string{"adobo", "tinola"}) {
		t.Errorf("Apply(chicken) = %v, want [adobo tinola]", got)
	}

	// Case-insensitive, matches description text too.
	got = Apply(c, "  TAMARIND ", nutrition.CategoryAll)
	if !equalKeys(got, []string{"sinigang"}) {
		t.Errorf("Apply(TAMARIND) = %v, want [sinigang]", got)
	}
}

func TestApplyCategoryOnly(t *testing.T) {
	c := testCollection(t)
	got := Apply(c, "", nutrition.CategoryLow)
	if !equalKeys(got, []string{"sinigang", "tinola"}) {
		t.Errorf("Apply(low) = %v, want [sinigang tinola]", got)
	}
}

func TestApplyComposesWithAND(t *testing.T) {
	c := testCollection(t)

	// tinola is low-calorie AND matches "chicken"; sinigang is low but
	// does not match the search text and must be excluded.
	got := Apply(c, "chicken", nutrition.CategoryLow)
	if !equalKeys(got, []string{"tinola"}) {
		t.Errorf("Apply(chicken, low) = %v, want [tinola]", got)
	}
}

func TestApplyNoMatches(t *testing.T) {
	c := testCollection(t)
	if got := Apply(c, "balut", nutrition.CategoryAll); len(got) != 0 {
		t.Errorf("Apply(balut) = %v, want empty", got)
	}
}

func TestDebouncerDropsStaleGenerations(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	// Three rapid keystrokes: only the last scheduled fire is current.
	d.Trigger()
	d.Trigger()
	d.Trigger()

	if d.Current(FireMsg{Gen: 1}) {
		t.Error("generation 1 should be stale after later triggers")
	}
	if d.Current(FireMsg{Gen: 2}) {
		t.Error("generation 2 should be stale after later triggers")
	}
	if !d.Current(FireMsg{Gen: 3}) {
		t.Error("generation 3 should be current")
	}
}

func TestDebouncerTickDeliversFireMsg(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	cmd := d.Trigger()
	if cmd == nil {
		t.Fatal("Trigger returned nil command")
	}

	msg := cmd()
	fire, ok := msg.(FireMsg)
	if !ok {
		t.Fatalf("command produced %T, want FireMsg", msg)
	}
	if !d.Current(fire) {
		t.Error("freshly produced FireMsg should be current")
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	if d.delay != DefaultDebounce {
		t.Errorf("delay = %v, want %v", d.delay, DefaultDebounce)
	}
}
