package roundservice

import (
	"context"
	"strconv"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
)

// Scorecard is the computed score table of a saved round or a draft.
type Scorecard struct {
	RoundID    int64                      `json:"roundId,omitempty"`
	CourseName string                     `json:"courseName"`
	Summary    string                     `json:"summary"`
	Holes      rounddomain.HoleSet        `json:"holes"`
	Rows       []rounddomain.ScorecardRow `json:"rows"`
}

// Scorecard computes the score table of a saved round, using each player's
// current effective handicap index.
func (s *RoundService) Scorecard(ctx context.Context, id int64) (Scorecard, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "Scorecard", strconv.FormatInt(id, 10), func(ctx context.Context) (Scorecard, error) {
		snap := s.store.Snapshot()
		r, err := snap.Rounds.FindByID(id)
		if err != nil {
			return Scorecard{}, err
		}
		return scorecardOf(snap, rounddomain.LoadDraft(r)), nil
	})
}

// PreviewScorecard computes the score table of an unsaved draft.
func (s *RoundService) PreviewScorecard(ctx context.Context, d *rounddomain.Draft) (Scorecard, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "PreviewScorecard", d.Course.Name, func(ctx context.Context) (Scorecard, error) {
		return scorecardOf(s.store.Snapshot(), d), nil
	})
}

func scorecardOf(snap *state.State, d *rounddomain.Draft) Scorecard {
	return Scorecard{
		RoundID:    d.ID,
		CourseName: d.Course.Name,
		Summary:    d.Summary().String(),
		Holes:      d.Holes.Clone(),
		Rows:       rounddomain.BuildScorecard(rounddomain.CourseOfDraft(d), d.Players, d.Scores, snap.IndexFor),
	}
}
