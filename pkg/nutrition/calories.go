// Package nutrition derives calorie values and categories from dish
// records. Both functions are pure; nothing here touches the UI or the
// data source.
package nutrition

import (
	"strconv"
	"strings"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
)

// CalorieNutrient is the nutrient name carrying the calorie fact.
// Exactly one fact per dish is expected to use it.
const CalorieNutrient = "Calories"

// Category is the three-tier calorie classification. CategoryAll is the
// filter sentinel meaning "no category restriction"; it is never
// produced by Categorize.
type Category string

const (
	CategoryLow    Category = "low"
	CategoryMedium Category = "medium"
	CategoryHigh   Category = "high"
	CategoryAll    Category = "all"
)

// categoryCycle is the order the UI steps through when cycling the
// category selector.
var categoryCycle = []Category{CategoryAll, CategoryLow, CategoryMedium, CategoryHigh}

// Next returns the category following c in the selector cycle. Unknown
// values restart at CategoryAll.
func (c Category) Next() Category {
	for i, cat := range categoryCycle {
		if cat == c {
			return categoryCycle[(i+1)%len(categoryCycle)]
		}
	}
	return CategoryAll
}

// CalorieValue extracts the numeric calorie magnitude from the dish's
// "Calories" nutrition fact. All non-digit bytes are stripped before
// parsing, so "320 kcal", "~320", and "320" all yield 320. A dish
// without the fact, or a value with no digits at all, yields 0; the
// function never fails.
func CalorieValue(d *catalog.Dish) int {
	if d == nil {
		return 0
	}
	fact, ok := d.Fact(CalorieNutrient)
	if !ok {
		return 0
	}

	var b strings.Builder
	for i := 0; i < len(fact.Value); i++ {
		if ch := fact.Value[i]; ch >= '0' && ch <= '9' {
			b.WriteByte(ch)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// Categorize maps a calorie value onto the three-tier split. The
// boundaries are closed at 300 and 400: exactly 300 and exactly 400 are
// both medium.
func Categorize(value int) Category {
	switch {
	case value < 300:
		return CategoryLow
	case value <= 400:
		return CategoryMedium
	default:
		return CategoryHigh
	}
}

// DishCategory is shorthand for Categorize(CalorieValue(d)).
func DishCategory(d *catalog.Dish) Category {
	return Categorize(CalorieValue(d))
}
