package rounddomain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
)

// ErrInvalidRound is returned by Validate for records that cannot be stored.
var ErrInvalidRound = errors.New("invalid round")

// RoundRecord is a saved round. Once stored, the repository owns it; editing
// goes through a Draft and a re-save under the same ID.
type RoundRecord struct {
	ID            int64              `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	CourseName    string             `json:"courseName"`
	Area          string             `json:"area"`
	HoleCount     int                `json:"holeCount"`
	CourseRating  float64            `json:"courseRating"`
	Slope         int                `json:"slope"`
	Tees          string             `json:"tees,omitempty"`
	Players       []string           `json:"players"`
	Holes         HoleSet            `json:"holes"`
	Scores        ScoreSheet         `json:"scores"`
	Differentials map[string]float64 `json:"differentials"`
}

func (r RoundRecord) Clone() RoundRecord {
	out := r
	out.Players = slices.Clone(r.Players)
	out.Holes = r.Holes.Clone()
	out.Scores = r.Scores.Clone()
	out.Differentials = maps.Clone(r.Differentials)
	return out
}

// Validate checks what Normalize cannot repair.
func (r RoundRecord) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRound, r.ID)
	}
	if !ValidHoleCount(r.HoleCount) {
		return fmt.Errorf("%w: round %d: %w, got %d", ErrInvalidRound, r.ID, ErrInvalidHoleCount, r.HoleCount)
	}
	for _, name := range r.Players {
		if name == "" {
			return fmt.Errorf("%w: round %d has an unnamed player", ErrInvalidRound, r.ID)
		}
	}
	return nil
}

// Normalize enforces the record invariants: the hole set has HoleCount holes,
// every listed player has exactly one sheet of matching length (missing sheets
// are all zeros), every sheet owner is listed, and all values are clamped.
func (r *RoundRecord) Normalize() {
	r.Holes = r.Holes.Resized(r.HoleCount)
	if r.Scores == nil {
		r.Scores = ScoreSheet{}
	}

	seen := make(map[string]bool, len(r.Players))
	players := make([]string, 0, len(r.Players))
	for _, name := range r.Players {
		if seen[name] {
			continue
		}
		seen[name] = true
		players = append(players, name)
		r.Scores.EnsurePlayer(name, r.HoleCount)
	}
	for _, name := range r.Scores.Players() {
		if !seen[name] {
			seen[name] = true
			players = append(players, name)
		}
	}
	r.Players = players
	r.Scores.Resize(r.HoleCount)

	if r.Slope <= 0 {
		r.Slope = DefaultSlope
	}
	if r.Differentials == nil {
		r.Differentials = map[string]float64{}
	}
}

// TotalPar is the par of the round's hole set.
func (r RoundRecord) TotalPar() int {
	return r.Holes.TotalPar()
}

// HasPlayer reports whether name has a score sheet in the round.
func (r RoundRecord) HasPlayer(name string) bool {
	_, ok := r.Scores[name]
	return ok
}

// Gross is the player's stroke total over the round's holes.
func (r RoundRecord) Gross(name string) int {
	return r.Scores.TotalOver(name, r.HoleCount)
}

// ComputeDifferentials recalculates the score differential of every player who
// recorded at least one stroke. Players with an empty card get none, so an
// unplayed sheet never drags a derived index down.
func (r *RoundRecord) ComputeDifferentials() {
	diffs := make(map[string]float64, len(r.Players))
	for _, name := range r.Players {
		gross := r.Gross(name)
		if gross <= 0 {
			continue
		}
		diffs[name] = handicapdomain.ScoreDifferential(gross, r.CourseRating, r.Slope)
	}
	r.Differentials = diffs
}

// RenamePlayer migrates every key that refers to oldName. It reports whether
// the record changed.
func (r *RoundRecord) RenamePlayer(oldName, newName string) bool {
	if oldName == newName {
		return false
	}
	changed := false
	for i, name := range r.Players {
		if name == oldName {
			r.Players[i] = newName
			changed = true
		}
	}
	if _, ok := r.Scores[oldName]; ok {
		r.Scores.Rename(oldName, newName)
		changed = true
	}
	if d, ok := r.Differentials[oldName]; ok {
		delete(r.Differentials, oldName)
		r.Differentials[newName] = d
		changed = true
	}
	return changed
}

// TotalsLine renders the per-player gross totals, e.g. "Ann: 40 • Bob: 44".
func (r RoundRecord) TotalsLine() string {
	line := ""
	for i, name := range r.Players {
		if i > 0 {
			line += " • "
		}
		line += fmt.Sprintf("%s: %d", name, r.Gross(name))
	}
	return line
}
