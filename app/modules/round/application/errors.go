package roundservice

import "errors"

var (
	// ErrUnrecognizedSince is returned when a history "since" value cannot be parsed.
	ErrUnrecognizedSince = errors.New("could not recognize since value")
	// ErrInvalidScorecard is returned for spreadsheets that are not a scorecard.
	ErrInvalidScorecard = errors.New("invalid scorecard spreadsheet")
)
