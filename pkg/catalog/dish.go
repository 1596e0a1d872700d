// Package catalog defines the dish records served by the NutriPinoy
// viewer and the order-preserving collection they are loaded into.
// Dishes are immutable once loaded; the collection is built exactly once
// per session by a source adapter and owned by the application model
// from then on.
package catalog

// NutritionFact is a single (nutrient, value) pair. The value is a
// display string such as "320 kcal" or "12 g"; numeric extraction for
// classification happens in pkg/nutrition.
type NutritionFact struct {
	Nutrient string `json:"nutrient" yaml:"nutrient"`
	Value    string `json:"value" yaml:"value"`
}

// Dish is one catalog entry. The slices keep the order of the source
// data; rendering preserves them as-is.
type Dish struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Ingredients []string        `json:"ingredients" yaml:"ingredients"`
	Nutrition   []NutritionFact `json:"nutrition" yaml:"nutrition"`
	Risks       []string        `json:"risks" yaml:"risks"`
}

// Fact returns the nutrition fact with the given nutrient name, or
// false if the dish carries no such fact.
func (d *Dish) Fact(nutrient string) (NutritionFact, bool) {
	for _, f := range d.Nutrition {
		if f.Nutrient == nutrient {
			return f, true
		}
	}
	return NutritionFact{}, false
}
