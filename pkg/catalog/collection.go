package catalog

import (
	"fmt"
)

// Collection is a keyed set of dishes that remembers insertion order.
// JSON objects decode into Go maps in arbitrary order, so the source
// decoders append keys as they appear in the document; gallery
// rendering iterates Keys() to stay deterministic across runs.
type Collection struct {
	keys   []string
	dishes map[string]*Dish
}

// New returns an empty Collection.
func New() *Collection {
	return &Collection{dishes: make(map[string]*Dish)}
}

// Add appends a dish under key. Keys are unique; re-adding an existing
// key is an error rather than a silent overwrite.
func (c *Collection) Add(key string, d *Dish) error {
	if d == nil {
		return fmt.Errorf("catalog: nil dish for key %q", key)
	}
	if _, exists := c.dishes[key]; exists {
		return fmt.Errorf("catalog: duplicate dish key %q", key)
	}
	c.keys = append(c.keys, key)
	c.dishes[key] = d
	return nil
}

// Get returns the dish stored under key, or false if the key is absent.
func (c *Collection) Get(key string) (*Dish, bool) {
	d, ok := c.dishes[key]
	return d, ok
}

// Has reports whether key is present.
func (c *Collection) Has(key string) bool {
	_, ok := c.dishes[key]
	return ok
}

// Keys returns the dish keys in insertion order. The returned slice is
// a copy; callers may filter or reorder it freely.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of dishes.
func (c *Collection) Len() int {
	return len(c.keys)
}
