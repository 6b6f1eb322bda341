package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
)

// HistoryQuery narrows the history view. Zero values are unconstrained.
type HistoryQuery struct {
	Player    string
	Course    string
	HoleCount int
	// Since keeps rounds played at or after this point; see SinceParser.
	Since string
}

func (q HistoryQuery) filter() rounddb.Filter {
	var f rounddb.Filter
	if q.Player != "" {
		f.Player = &q.Player
	}
	if q.Course != "" {
		f.Course = &q.Course
	}
	if q.HoleCount > 0 {
		f.HoleCount = &q.HoleCount
	}
	return f
}

// HistoryEntry is one line of the round history.
type HistoryEntry struct {
	Round  rounddomain.RoundRecord `json:"round"`
	Totals string                  `json:"totals"`
	Par    int                     `json:"par"`
}

// History lists matching rounds newest first.
func (s *RoundService) History(ctx context.Context, q HistoryQuery) ([]HistoryEntry, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "History", q.Player, func(ctx context.Context) ([]HistoryEntry, error) {
		rounds, err := s.historyRounds(q)
		if err != nil {
			return nil, err
		}
		entries := make([]HistoryEntry, 0, len(rounds))
		for _, r := range rounds {
			entries = append(entries, HistoryEntry{Round: r, Totals: r.TotalsLine(), Par: r.TotalPar()})
		}
		return entries, nil
	})
}

func (s *RoundService) historyRounds(q HistoryQuery) ([]rounddomain.RoundRecord, error) {
	since, err := s.since.Parse(q.Since, s.clock.Now())
	if err != nil {
		return nil, err
	}
	rounds := s.store.Snapshot().Rounds.History(q.filter())
	if since.IsZero() {
		return rounds, nil
	}
	kept := rounds[:0]
	for _, r := range rounds {
		if !r.Timestamp.Before(since) {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
