package state

import "fmt"

// DuplicateKeyError reports a name or id collision. It unwraps to the
// repository sentinel (playerdb.ErrDuplicatePlayer or rounddb.ErrDuplicateID).
type DuplicateKeyError struct {
	Kind string
	Key  string
	Err  error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Kind, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// ImportError reports a rejected import document. State is unchanged when it
// is returned.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err == nil {
		return "import rejected: " + e.Reason
	}
	return fmt.Sprintf("import rejected: %s: %v", e.Reason, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
