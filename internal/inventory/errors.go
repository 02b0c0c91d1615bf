// Package inventory implements the per-category stock handlers that
// validate purchases against their fixed entry lists.
package inventory

import "errors"

// ErrNotAvailable is returned when a purchase is attempted for an entry
// that is not part of the handler's stock. It is the only failure mode a
// purchase has.
var ErrNotAvailable = errors.New("entry is not available in this inventory")
