package rounddomain

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPlayer is returned when strokes are entered for a player who has no
// sheet in the round.
var ErrUnknownPlayer = errors.New("player has no score sheet in this round")

// ScoreSheet maps a player name to the gross strokes of each hole.
type ScoreSheet map[string][]int

// EnsurePlayer creates an all-zero sheet for name if it does not exist yet.
func (s ScoreSheet) EnsurePlayer(name string, holeCount int) {
	if _, ok := s[name]; ok {
		return
	}
	s[name] = make([]int, sheetLength(holeCount))
}

// SetStroke stores a stroke count clamped to [0,30].
func (s ScoreSheet) SetStroke(name string, holeIndex, value int) error {
	strokes, ok := s[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	if holeIndex < 0 || holeIndex >= len(strokes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrHoleOutOfRange, holeIndex, len(strokes))
	}
	strokes[holeIndex] = clamp(value, MinStrokes, MaxStrokes)
	return nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Total is the gross score over every hole of the sheet.
func (s ScoreSheet) Total(name string) int {
	return sum(s[name])
}

// TotalOver sums the first min(n, len) holes.
func (s ScoreSheet) TotalOver(name string, n int) int {
	strokes := s[name]
	return sum(strokes[:clamp(n, 0, len(strokes))])
}

// FrontNine sums holes 1-9, or 0 for rounds shorter than nine holes.
func (s ScoreSheet) FrontNine(name string) int {
	strokes := s[name]
	if len(strokes) < 9 {
		return 0
	}
	return sum(strokes[:9])
}

// BackNine sums holes 10 onwards, or 0 for rounds shorter than eighteen holes.
func (s ScoreSheet) BackNine(name string) int {
	strokes := s[name]
	if len(strokes) < 18 {
		return 0
	}
	return sum(strokes[9:])
}

// GrossToPar is the total minus the total par of holes.
func (s ScoreSheet) GrossToPar(name string, holes HoleSet) int {
	return s.Total(name) - holes.TotalPar()
}

// Reset zeroes every hole of a player's sheet.
func (s ScoreSheet) Reset(name string) {
	clear(s[name])
}

// Resize pads or truncates every sheet to holeCount holes and clamps values.
func (s ScoreSheet) Resize(holeCount int) {
	holeCount = sheetLength(holeCount)
	for name, strokes := range s {
		out := make([]int, holeCount)
		for i := range out {
			if i < len(strokes) {
				out[i] = clamp(strokes[i], MinStrokes, MaxStrokes)
			}
		}
		s[name] = out
	}
}

// Rename moves a sheet to a new key. It is a no-op when oldName is absent.
func (s ScoreSheet) Rename(oldName, newName string) {
	strokes, ok := s[oldName]
	if !ok || oldName == newName {
		return
	}
	delete(s, oldName)
	s[newName] = strokes
}

// Players returns the sheet keys in byte order.
func (s ScoreSheet) Players() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s ScoreSheet) Clone() ScoreSheet {
	out := make(ScoreSheet, len(s))
	for name, strokes := range s {
		out[name] = slices.Clone(strokes)
	}
	return out
}
