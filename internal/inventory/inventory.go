package inventory

import (
	"slices"

	"github.com/abryzgalov/motostore/internal/catalog"
)

// Handler is the capability set every floor section exposes. The three
// category variants differ only in data, so a single Inventory type backs
// them all; code that drives the floor uniformly depends on this interface.
type Handler interface {
	// Category returns the fixed tag this handler serves.
	Category() catalog.Category

	// Entries returns the stocked entries in display order.
	Entries() []catalog.Entry

	// Purchase validates the entry against the stock list and computes the
	// purchase outcome. Returns ErrNotAvailable if the entry is absent.
	Purchase(entry catalog.Entry, discount float64) (*Receipt, error)
}

// Receipt is the outcome of a successful purchase.
type Receipt struct {
	PrepTime float64 // minutes until the bike is ready
	Cost     float64 // sticker price after discount
}

// Inventory holds the fixed entry list for one category. The list never
// changes after construction, and purchases never decrement stock: every
// purchase is checked against the original list, so the same bike can be
// sold any number of times. That is a known simplification of this system,
// not an oversight.
type Inventory struct {
	category catalog.Category
	entries  []catalog.Entry
}

var _ Handler = (*Inventory)(nil)

// New creates an inventory for the given category. The entry list is
// copied; display order is the order given here.
func New(category catalog.Category, entries []catalog.Entry) *Inventory {
	return &Inventory{
		category: category,
		entries:  slices.Clone(entries),
	}
}

// Category returns the fixed tag this inventory serves.
func (i *Inventory) Category() catalog.Category {
	return i.category
}

// Entries returns a copy of the stocked entries in display order.
func (i *Inventory) Entries() []catalog.Entry {
	return slices.Clone(i.entries)
}

// Contains reports whether the entry is structurally equal to a stocked one.
func (i *Inventory) Contains(entry catalog.Entry) bool {
	return slices.Contains(i.entries, entry)
}

// Purchase computes the outcome of buying the entry at the given discount.
// Discount is taken as-is; callers are expected to pass values in [0,1],
// but the range is deliberately not enforced here.
func (i *Inventory) Purchase(entry catalog.Entry, discount float64) (*Receipt, error) {
	if !i.Contains(entry) {
		return nil, ErrNotAvailable
	}
	return &Receipt{
		PrepTime: entry.PrepTime(),
		Cost:     entry.StickerPrice() * (1 - discount),
	}, nil
}
