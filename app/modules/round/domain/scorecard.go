package rounddomain

import (
	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
)

// ScorecardRow is one player's line of a scorecard.
type ScorecardRow struct {
	Player         string                  `json:"player"`
	Strokes        []int                   `json:"strokes"`
	Out            int                     `json:"out"`
	In             int                     `json:"in"`
	Total          int                     `json:"total"`
	ToPar          int                     `json:"toPar"`
	CourseHandicap handicapdomain.Optional `json:"courseHandicap"`
	Net            handicapdomain.Optional `json:"net"`
}

// Course is the subset of round data the course handicap depends on.
type Course struct {
	HoleCount    int
	CourseRating float64
	Slope        int
	Holes        HoleSet
}

// CourseOf extracts the handicap-relevant course data of a record.
func CourseOf(r RoundRecord) Course {
	return Course{HoleCount: r.HoleCount, CourseRating: r.CourseRating, Slope: r.Slope, Holes: r.Holes}
}

// CourseOfDraft extracts the handicap-relevant course data of a draft.
func CourseOfDraft(d *Draft) Course {
	return Course{HoleCount: d.Course.HoleCount, CourseRating: d.Course.CourseRating, Slope: d.Course.Slope, Holes: d.Holes}
}

// BuildScorecard computes the per-player rows of a round. indexFor supplies
// the handicap index to use for each player (explicit or derived).
func BuildScorecard(course Course, players []string, scores ScoreSheet, indexFor func(string) handicapdomain.Index) []ScorecardRow {
	rows := make([]ScorecardRow, 0, len(players))
	totalPar := course.Holes.TotalPar()
	for _, name := range players {
		total := scores.TotalOver(name, course.HoleCount)
		ch := handicapdomain.CourseHandicapFor(indexFor(name), course.Slope, course.CourseRating, totalPar)
		rows = append(rows, ScorecardRow{
			Player:         name,
			Strokes:        append([]int(nil), scores[name]...),
			Out:            scores.FrontNine(name),
			In:             scores.BackNine(name),
			Total:          total,
			ToPar:          total - totalPar,
			CourseHandicap: ch,
			Net:            handicapdomain.NetScore(total, ch),
		})
	}
	return rows
}
