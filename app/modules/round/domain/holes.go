// Package rounddomain holds the round data model: the per-hole configuration,
// the per-player score sheet, the saved round record and the editable draft.
package rounddomain

import (
	"errors"
	"fmt"
)

const (
	MinPar = 0
	MaxPar = 10

	MinStrokes = 0
	MaxStrokes = 30

	// MaxHoleCount bounds every hole set; two full rounds is the longest card.
	MaxHoleCount = 36

	DefaultHoleCount    = 18
	DefaultCourseRating = 72.0
	DefaultSlope        = 113
	DefaultTees         = "white"
)

var (
	// ErrHoleOutOfRange is returned when a hole index does not exist in the round.
	// Out-of-range values are clamped, only out-of-range positions are errors.
	ErrHoleOutOfRange = errors.New("hole index out of range")

	// ErrInvalidHoleCount is returned for a hole count outside [1,MaxHoleCount].
	ErrInvalidHoleCount = errors.New("hole count must be between 1 and 36")
)

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// ValidHoleCount reports whether n is in [1,MaxHoleCount].
func ValidHoleCount(n int) bool {
	return n > 0 && n <= MaxHoleCount
}

// sheetLength is the slice length used for n holes. Invalid counts get no
// holes at all; Validate rejects such records before they are stored.
func sheetLength(n int) int {
	if !ValidHoleCount(n) {
		return 0
	}
	return n
}

// Hole is the configuration of a single hole.
type Hole struct {
	Par         int `json:"par"`
	StrokeIndex int `json:"strokeIndex"`
}

// HoleSet is the fixed-length hole configuration of one round.
type HoleSet []Hole

// NewHoleSet returns holeCount holes with unknown par (0) and stroke index
// 1..holeCount in order. An invalid count yields an empty set.
func NewHoleSet(holeCount int) HoleSet {
	holes := make(HoleSet, sheetLength(holeCount))
	for i := range holes {
		holes[i] = Hole{Par: 0, StrokeIndex: i + 1}
	}
	return holes
}

func (h HoleSet) checkIndex(index int) error {
	if index < 0 || index >= len(h) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrHoleOutOfRange, index, len(h))
	}
	return nil
}

// SetPar stores a par value clamped to [0,10].
func (h HoleSet) SetPar(index, value int) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}
	h[index].Par = clamp(value, MinPar, MaxPar)
	return nil
}

// SetStrokeIndex stores a stroke index clamped to [1,holeCount].
func (h HoleSet) SetStrokeIndex(index, value int) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}
	h[index].StrokeIndex = clamp(value, 1, len(h))
	return nil
}

// TotalPar sums the par of every hole.
func (h HoleSet) TotalPar() int {
	total := 0
	for _, hole := range h {
		total += hole.Par
	}
	return total
}

// Pars returns the par values in hole order.
func (h HoleSet) Pars() []int {
	pars := make([]int, len(h))
	for i, hole := range h {
		pars[i] = hole.Par
	}
	return pars
}

func (h HoleSet) Clone() HoleSet {
	if h == nil {
		return nil
	}
	out := make(HoleSet, len(h))
	copy(out, h)
	return out
}

// Resized returns a copy with exactly holeCount holes. Missing holes get the
// defaults of NewHoleSet; every value is clamped to its valid range.
func (h HoleSet) Resized(holeCount int) HoleSet {
	out := NewHoleSet(holeCount)
	for i := range out {
		if i < len(h) {
			out[i] = h[i]
		}
		out[i].Par = clamp(out[i].Par, MinPar, MaxPar)
		out[i].StrokeIndex = clamp(out[i].StrokeIndex, 1, len(out))
	}
	return out
}
