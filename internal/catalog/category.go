package catalog

import "fmt"

// Category tags a dealership floor section. The set is fixed: every
// inventory handler is built for exactly one of these.
type Category int

const (
	Cruiser Category = iota
	Sport
	Touring
)

// categories maps each tag to its wire name and its display label used in
// the showroom listing.
var categories = map[Category]struct {
	name  string
	label string
}{
	Cruiser: {name: "cruisers", label: "Cruisers"},
	Sport:   {name: "sport", label: "Sport Bikes"},
	Touring: {name: "touring", label: "Touring Bikes"},
}

// String returns the wire name of the category, used in config keys and
// REST paths.
func (c Category) String() string {
	if meta, ok := categories[c]; ok {
		return meta.name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Label returns the human-facing section heading for the showroom listing.
func (c Category) Label() string {
	if meta, ok := categories[c]; ok {
		return meta.label
	}
	return c.String()
}

// ParseCategory resolves a wire name back to its tag.
// Returns an error for names outside the fixed set.
func ParseCategory(name string) (Category, error) {
	for c, meta := range categories {
		if meta.name == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// Categories returns all tags in display order.
func Categories() []Category {
	return []Category{Cruiser, Sport, Touring}
}
