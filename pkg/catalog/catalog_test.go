package catalog

import (
	"strings"
	"testing"
)

func TestAddAndGet(t *testing.T) {
	c := New()
	d := &Dish{Name: "Chicken Adobo"}
	if err := c.Add("adobo", d); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := c.Get("adobo")
	if !ok {
		t.Fatal("Get returned ok=false for existing key")
	}
	if got != d {
		t.Error("Get returned a different dish pointer; dishes must be shared, not copied")
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get returned ok=true for absent key")
	}
}

func TestAddRejectsDuplicateKey(t *testing.T) {
	c := New()
	if err := c.Add("adobo", &Dish{}); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := c.Add("adobo", &Dish{}); err == nil {
		t.Error("expected error when re-adding an existing key")
	}
}

func TestDecodeJSONPreservesKeyOrder(t *testing.T) {
	doc := `{
		"sinigang": {"name": "Pork Sinigang"},
		"adobo":    {"name": "Chicken Adobo"},
		"lumpia":   {"name": "Lumpiang Shanghai"}
	}`

	c, err := DecodeJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	want := []string{"sinigang", "adobo", "lumpia"}
	got := c.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q (source order must survive decoding)", i, got[i], want[i])
		}
	}
}

func TestDecodeJSONFullRecord(t *testing.T) {
	doc := `{
		"adobo": {
			"name": "Chicken Adobo",
			"description": "Braised chicken in soy sauce and vinegar.",
			"ingredients": ["chicken", "soy sauce", "vinegar", "garlic"],
			"nutrition": [
				{"nutrient": "Calories", "value": "350 kcal"},
				{"nutrient": "Protein", "value": "28 g"}
			],
			"risks": ["high sodium"]
		}
	}`

	c, err := DecodeJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	d, ok := c.Get("adobo")
	if !ok {
		t.Fatal("adobo missing after decode")
	}
	if d.Name != "Chicken Adobo" {
		t.Errorf("Name = %q", d.Name)
	}
	if len(d.Ingredients) != 4 || d.Ingredients[0] != "chicken" {
		t.Errorf("Ingredients = %v", d.Ingredients)
	}
	if len(d.Nutrition) != 2 || d.Nutrition[0].Nutrient != "Calories" || d.Nutrition[0].Value != "350 kcal" {
		t.Errorf("Nutrition = %v", d.Nutrition)
	}
	if len(d.Risks) != 1 || d.Risks[0] != "high sodium" {
		t.Errorf("Risks = %v", d.Risks)
	}

	fact, ok := d.Fact("Protein")
	if !ok || fact.Value != "28 g" {
		t.Errorf("Fact(Protein) = %v, %v", fact, ok)
	}
}

func TestDecodeJSONRejectsMalformedDocument(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", "this is not json"},
		{"array root", `[{"name": "x"}]`},
		{"truncated", `{"adobo": {"name": "Chicken`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeJSON(strings.NewReader(tc.doc)); err == nil {
				t.Errorf("DecodeJSON(%q) succeeded, want error", tc.doc)
			}
		})
	}
}

func TestDecodeYAMLPreservesKeyOrder(t *testing.T) {
	doc := `
lumpia:
  name: Lumpiang Shanghai
adobo:
  name: Chicken Adobo
  nutrition:
    - nutrient: Calories
      value: 350 kcal
`
	c, err := DecodeYAML([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}

	want := []string{"lumpia", "adobo"}
	got := c.Keys()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	d, _ := c.Get("adobo")
	if d == nil || len(d.Nutrition) != 1 || d.Nutrition[0].Value != "350 kcal" {
		t.Errorf("adobo decoded incorrectly: %+v", d)
	}
}

func TestDecodeYAMLRejectsNonMapping(t *testing.T) {
	if _, err := DecodeYAML([]byte("- a\n- b\n")); err == nil {
		t.Error("sequence root should be rejected")
	}
	if _, err := DecodeYAML([]byte("adobo: [unclosed")); err == nil {
		t.Error("malformed yaml should be rejected")
	}
}
