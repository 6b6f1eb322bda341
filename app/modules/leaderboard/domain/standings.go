// Package leaderboarddomain computes best-score leaderboards per course.
package leaderboarddomain

import (
	"errors"
	"fmt"
	"strconv"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
)

// Bucket selects which round length a leaderboard ranks by.
type Bucket int

const (
	Bucket9  Bucket = 9
	Bucket18 Bucket = 18
)

// ScoreType selects gross or net ranking.
type ScoreType string

const (
	Gross ScoreType = "gross"
	Net   ScoreType = "net"
)

var (
	ErrInvalidBucket    = errors.New("hole bucket must be 9 or 18")
	ErrInvalidScoreType = errors.New("score type must be gross or net")
)

// ParseBucket accepts "9" and "18"; empty means 18.
func ParseBucket(s string) (Bucket, error) {
	if s == "" {
		return Bucket18, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || (n != int(Bucket9) && n != int(Bucket18)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBucket, s)
	}
	return Bucket(n), nil
}

// ParseScoreType accepts "gross" and "net"; empty means gross.
func ParseScoreType(s string) (ScoreType, error) {
	switch ScoreType(s) {
	case "", Gross:
		return Gross, nil
	case Net:
		return Net, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScoreType, s)
}

// Standing is one player's best results on a course.
type Standing struct {
	Player       string                  `json:"player"`
	Best9Gross   handicapdomain.Optional `json:"best9Gross"`
	Best9Net     handicapdomain.Optional `json:"best9Net"`
	Best18Gross  handicapdomain.Optional `json:"best18Gross"`
	Best18Net    handicapdomain.Optional `json:"best18Net"`
	RoundsPlayed int                     `json:"roundsPlayed"`
}

// Score returns the value a standing is ranked by.
func (s Standing) Score(b Bucket, t ScoreType) handicapdomain.Optional {
	switch {
	case b == Bucket9 && t == Net:
		return s.Best9Net
	case b == Bucket9:
		return s.Best9Gross
	case t == Net:
		return s.Best18Net
	default:
		return s.Best18Gross
	}
}

// IndexResolver returns the handicap index to use for a player's net scores.
type IndexResolver func(player string) handicapdomain.Index

// memoized caches the resolver per player. A nil resolver means no index.
func (f IndexResolver) memoized() IndexResolver {
	cache := make(map[string]handicapdomain.Index)
	return func(player string) handicapdomain.Index {
		if index, ok := cache[player]; ok {
			return index
		}
		var index handicapdomain.Index
		if f != nil {
			index = f(player)
		}
		cache[player] = index
		return index
	}
}

// Compute aggregates the best gross and net per player over every round on
// course (exact, case-sensitive match). Standings come back in the order
// players were first seen; use Rank to order them.
//
// A card with no strokes counts as a round played but never as a best score.
// This deliberately departs from a plain minimum over every round, where an
// untouched card would rank as a best gross of 0.
//
// indexFor is consulted at most once per player.
func Compute(course string, rounds []rounddomain.RoundRecord, indexFor IndexResolver) []Standing {
	indexFor = indexFor.memoized()
	byPlayer := make(map[string]*Standing)
	order := make([]string, 0)

	for _, r := range rounds {
		if r.CourseName != course {
			continue
		}
		totalPar := r.TotalPar()
		for _, name := range r.Players {
			if !r.HasPlayer(name) {
				continue
			}
			st, ok := byPlayer[name]
			if !ok {
				st = &Standing{Player: name}
				byPlayer[name] = st
				order = append(order, name)
			}
			st.RoundsPlayed++

			gross := r.Gross(name)
			if gross <= 0 {
				continue
			}
			ch := handicapdomain.CourseHandicapFor(indexFor(name), r.Slope, r.CourseRating, totalPar)
			net := handicapdomain.NetScore(gross, ch)

			switch r.HoleCount {
			case int(Bucket9):
				st.Best9Gross = st.Best9Gross.Min(handicapdomain.Some(gross))
				st.Best9Net = st.Best9Net.Min(net)
			case int(Bucket18):
				st.Best18Gross = st.Best18Gross.Min(handicapdomain.Some(gross))
				st.Best18Net = st.Best18Net.Min(net)
			}
		}
	}

	out := make([]Standing, 0, len(order))
	for _, name := range order {
		out = append(out, *byPlayer[name])
	}
	return out
}
