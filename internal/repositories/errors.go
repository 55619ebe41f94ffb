package repositories

import "errors"

// ErrNotFound is returned when the requested record does not exist. GORM
// implementations wrap it so callers can use errors.Is regardless of backend.
var ErrNotFound = errors.New("record not found")
