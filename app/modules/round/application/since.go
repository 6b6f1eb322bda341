package roundservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// SinceParser turns a history "since" value into an instant. It accepts
// RFC 3339 timestamps, plain dates and English phrases such as "yesterday"
// or "3 days ago".
type SinceParser struct {
	w *when.Parser
}

func NewSinceParser() *SinceParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &SinceParser{w: w}
}

var sinceLayouts = []string{time.RFC3339, "2006-01-02"}

// Parse resolves input relative to now. Empty input means no bound and
// returns the zero time.
func (p *SinceParser) Parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}
	for _, layout := range sinceLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}

	r, err := p.w.Parse(strings.ToLower(input), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrUnrecognizedSince, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrUnrecognizedSince, input)
	}
	return r.Time, nil
}
