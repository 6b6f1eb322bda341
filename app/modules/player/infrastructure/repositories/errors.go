package playerdb

import "errors"

var (
	// ErrNotFound is returned when no player has the requested name.
	ErrNotFound = errors.New("player not found")
	// ErrDuplicatePlayer is returned when a name is already on the roster.
	ErrDuplicatePlayer = errors.New("player already exists")
)
