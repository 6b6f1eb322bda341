// Package handicapdomain holds the course handicap and score differential
// formulas. They follow the shape of the World Handicap System but are a
// simplification of it: no 9/18 combination rules, no exceptional score
// reduction and no low-handicap caps.
package handicapdomain

import (
	"math"
	"slices"
)

const (
	// NeutralSlope is the slope rating of a course of standard difficulty.
	NeutralSlope = 113

	// HistoryWindow is how many of a player's most recent differentials are
	// considered when deriving an index.
	HistoryWindow = 20

	// BestDifferentials is how many of the windowed differentials are averaged.
	// The real WHS table scales this with the number of rounds; this tracker
	// always uses min(8, n).
	BestDifferentials = 8
)

// normalizeSlope treats a missing or non-positive slope as the neutral slope.
func normalizeSlope(slope int) float64 {
	if slope <= 0 {
		return NeutralSlope
	}
	return float64(slope)
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// CourseHandicap converts a handicap index into strokes for a specific course:
// round(index * slope/113 + (courseRating - totalPar)). The result may be
// negative for better-than-scratch players.
func CourseHandicap(handicapIndex float64, slope int, courseRating float64, totalPar int) int {
	ch := handicapIndex*(normalizeSlope(slope)/NeutralSlope) + (courseRating - float64(totalPar))
	return int(math.Round(ch))
}

// CourseHandicapFor is CourseHandicap for an index that may be absent.
func CourseHandicapFor(index Index, slope int, courseRating float64, totalPar int) Optional {
	if !index.Valid {
		return None()
	}
	return Some(CourseHandicap(index.Value, slope, courseRating, totalPar))
}

// NetScore is gross minus course handicap, or no data when the course
// handicap is unknown.
func NetScore(gross int, courseHandicap Optional) Optional {
	if !courseHandicap.Valid {
		return None()
	}
	return Some(gross - courseHandicap.Value)
}

// ScoreDifferential normalizes a gross score against the course rating and
// slope: (gross - rating) * 113 / slope, rounded to two decimals.
// It does not depend on par.
func ScoreDifferential(grossTotal int, courseRating float64, slope int) float64 {
	return roundTo((float64(grossTotal)-courseRating)*NeutralSlope/normalizeSlope(slope), 2)
}

// DerivedHandicapIndex averages the best min(8, n) of the given differentials
// and rounds to one decimal. Callers pass at most HistoryWindow recent values
// (see RecentDifferentials). The input order does not matter.
func DerivedHandicapIndex(differentials []float64) Index {
	if len(differentials) == 0 {
		return NoIndex()
	}

	sorted := slices.Clone(differentials)
	slices.Sort(sorted)

	n := min(BestDifferentials, len(sorted))
	sum := 0.0
	for _, d := range sorted[:n] {
		sum += d
	}
	return IndexOf(roundTo(sum/float64(n), 1))
}

// RecentDifferentials keeps the last HistoryWindow values of a
// chronologically ordered (oldest first) differential history.
func RecentDifferentials(chronological []float64) []float64 {
	if len(chronological) <= HistoryWindow {
		return chronological
	}
	return chronological[len(chronological)-HistoryWindow:]
}

// ResolveIndex picks the index used for course handicap and net scores.
// An explicit index always wins; the derived value is only a fallback.
func ResolveIndex(explicit Index, chronological []float64) Index {
	if explicit.Valid {
		return explicit
	}
	return DerivedHandicapIndex(RecentDifferentials(chronological))
}
