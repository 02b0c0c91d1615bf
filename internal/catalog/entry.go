// Package catalog defines the bike records sold on the dealership floor.
package catalog

import "math"

// Entry describes a single bike model. Entries are immutable value types:
// construct once, compare with ==. Two entries are the same bike iff all
// four fields match.
type Entry struct {
	Name       string
	EngineSize int     // engine displacement, cc
	BasePrice  float64 // factory price
	PrepRate   float64 // prep work, minutes per cc
}

// PrepTime returns the minutes needed to prep the bike for delivery,
// rounded to two decimal places. Derived from the stored fields on every
// call, never cached.
func (e Entry) PrepTime() float64 {
	return math.Round(float64(e.EngineSize)*e.PrepRate*100) / 100
}

// StickerPrice returns the showroom price: the base price moved to its
// thousand boundary less one, dealer style. 18000 lists as 17999, 15000 as
// 14999, 15499 as 15999. Applying the rule to a sticker price returns the
// same sticker price.
func (e Entry) StickerPrice() float64 {
	return math.Ceil(e.BasePrice/1000)*1000 - 1
}
