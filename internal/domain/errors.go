package domain

import "errors"

// ErrNotFound is returned when no schedule matches the supplied natural key.
// It is the only domain error: edit, delete, and toggle report it; create and
// the day query cannot fail at the domain level.
var ErrNotFound = errors.New("schedule not found")
