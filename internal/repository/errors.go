package repository

import "errors"

// ErrNotFound is returned when a targeted operation matched no rows.
var ErrNotFound = errors.New("not found")
