package scratch

import "errors"

// ErrSurfaceUnavailable indicates the overlay buffer has been released
// (Close was called) and the widget refuses further stroke and
// sampling operations. Already-rendered output stays valid.
var ErrSurfaceUnavailable = errors.New("scratch: surface unavailable")
