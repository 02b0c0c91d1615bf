package service

import "errors"

// ErrUnknownCategory is returned when a request names a category outside
// the fixed set the dealership serves.
var ErrUnknownCategory = errors.New("unknown category")
