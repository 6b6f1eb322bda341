package leaderboarddomain

import (
	"slices"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Leaderboard is a ranked view of one course for one bucket and score type.
type Leaderboard struct {
	Course    string     `json:"course"`
	Bucket    Bucket     `json:"bucket"`
	ScoreType ScoreType  `json:"scoreType"`
	Empty     bool       `json:"empty"`
	Standings []Standing `json:"standings"`
}

// Rank returns a sorted copy of standings: ascending by the selected score,
// players without a score in the bucket last, ties by collated name and
// finally by byte order so the result is a total order.
func Rank(standings []Standing, b Bucket, t ScoreType) []Standing {
	col := collate.New(language.Und)
	out := slices.Clone(standings)
	slices.SortStableFunc(out, func(x, y Standing) int {
		sx, sy := x.Score(b, t), y.Score(b, t)
		if sx.Less(sy) {
			return -1
		}
		if sy.Less(sx) {
			return 1
		}
		if c := col.CompareString(x.Player, y.Player); c != 0 {
			return c
		}
		return strings.Compare(x.Player, y.Player)
	})
	return out
}

// Build computes and ranks the leaderboard of a course. A course with no
// rounds yields an Empty leaderboard, not an error.
func Build(course string, rounds []rounddomain.RoundRecord, indexFor IndexResolver, b Bucket, t ScoreType) Leaderboard {
	standings := Compute(course, rounds, indexFor)
	return Leaderboard{
		Course:    course,
		Bucket:    b,
		ScoreType: t,
		Empty:     len(standings) == 0,
		Standings: Rank(standings, b, t),
	}
}
