// Package showroom coordinates the floor sections: listing the stock,
// selling single bikes and walking batch deals. All human-facing text goes
// to the sink the showroom is constructed with; the exact wording and
// ordering of those lines is a compatibility contract.
package showroom

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/abryzgalov/motostore/internal/catalog"
	"github.com/abryzgalov/motostore/internal/inventory"
)

const separator = "----------------------------------------"

// Showroom aggregates the category handlers in display order. It keeps no
// state of its own beyond the handler list, the output sink and the coin
// flip used to simulate stock-outs on batch deals.
type Showroom struct {
	handlers []inventory.Handler
	out      io.Writer
	flip     func() bool
}

// New creates a showroom over the given handlers, emitting to out.
// flip is the stock-out coin; pass nil for a fair random one. Tests inject
// a deterministic flip here.
func New(handlers []inventory.Handler, out io.Writer, flip func() bool) *Showroom {
	if flip == nil {
		flip = func() bool { return rand.IntN(2) == 1 }
	}
	return &Showroom{
		handlers: handlers,
		out:      out,
		flip:     flip,
	}
}

// Handlers returns the floor sections in display order.
func (s *Showroom) Handlers() []inventory.Handler {
	return s.handlers
}

// Handler returns the section serving the given category.
func (s *Showroom) Handler(c catalog.Category) (inventory.Handler, bool) {
	for _, h := range s.handlers {
		if h.Category() == c {
			return h, true
		}
	}
	return nil, false
}

// ShowInventory emits the full floor listing: per section, the category
// label, one line per bike with its engine size and sticker price, then a
// separator. Prices print as whole dollars, fractions dropped.
func (s *Showroom) ShowInventory() {
	for _, h := range s.handlers {
		fmt.Fprintln(s.out, h.Category().Label())
		for _, e := range h.Entries() {
			fmt.Fprintf(s.out, "%s (%d cc) $%d\n", e.Name, e.EngineSize, int64(e.StickerPrice()))
		}
		fmt.Fprintln(s.out, separator)
	}
}

// Buy sells a single bike from the given section. The membership pre-check
// duplicates the handler's own validation on purpose; a bike the section
// does not stock is rejected before Purchase is even asked. On success the
// confirmation line is emitted and Buy reports true; on failure nothing is
// emitted and Buy reports false. The handler's error never escapes.
func (s *Showroom) Buy(entry catalog.Entry, h inventory.Handler, discount float64) bool {
	if !slices.Contains(h.Entries(), entry) {
		return false
	}
	receipt, err := h.Purchase(entry, discount)
	if err != nil {
		return false
	}
	fmt.Fprintf(s.out, "The %s is yours! It will be ready in %.2f mins. Total due: $%d\n",
		entry.Name, receipt.PrepTime, int64(receipt.Cost))
	return true
}

// BuyMultiple walks the given bikes against one section, partitioning them
// into sold and unavailable. Per bike, in order: a coin flip that lands
// true for a bike the section actually stocks marks it unavailable anyway,
// simulating a stock-out; otherwise the bike goes through Buy and lands in
// a partition by its outcome. Every bike ends up in exactly one partition.
//
// After the walk: one separator before the unavailable listing when both
// partitions are non-empty, one line per unavailable bike, and a trailing
// separator always. The partition is returned for callers that need more
// than the emitted text.
func (s *Showroom) BuyMultiple(entries []catalog.Entry, h inventory.Handler, discount float64) (sold, unavailable []catalog.Entry) {
	stock := h.Entries()
	for _, entry := range entries {
		if s.flip() && slices.Contains(stock, entry) {
			unavailable = append(unavailable, entry)
			continue
		}
		if s.Buy(entry, h, discount) {
			sold = append(sold, entry)
		} else {
			unavailable = append(unavailable, entry)
		}
	}
	if len(sold) > 0 && len(unavailable) > 0 {
		fmt.Fprintln(s.out, separator)
	}
	for _, entry := range unavailable {
		fmt.Fprintf(s.out, "%s is out of our inventory.\n", entry.Name)
	}
	fmt.Fprintln(s.out, separator)
	return sold, unavailable
}
