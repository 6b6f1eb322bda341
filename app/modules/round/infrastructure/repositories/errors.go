package rounddb

import "errors"

var (
	// ErrNotFound is returned when no round has the requested id.
	ErrNotFound = errors.New("round not found")
	// ErrDuplicateID is returned when inserting a round whose id is already stored.
	ErrDuplicateID = errors.New("round id already exists")
)
