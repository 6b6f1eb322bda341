package playerservice

import (
	"context"
	"fmt"
	"time"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdb "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/repositories"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
)

// DifferentialEntry is one round of a player's differential history.
type DifferentialEntry struct {
	RoundID      int64     `json:"roundId"`
	Timestamp    time.Time `json:"timestamp"`
	CourseName   string    `json:"courseName"`
	HoleCount    int       `json:"holeCount"`
	Gross        int       `json:"gross"`
	Differential float64   `json:"differential"`
}

// Profile summarizes one player across the roster and round history.
type Profile struct {
	Name           string                  `json:"name"`
	OnRoster       bool                    `json:"onRoster"`
	ExplicitIndex  handicapdomain.Index    `json:"explicitIndex"`
	DerivedIndex   handicapdomain.Index    `json:"derivedIndex"`
	EffectiveIndex handicapdomain.Index    `json:"effectiveIndex"`
	RoundsPlayed   int                     `json:"roundsPlayed"`
	BestGross9     handicapdomain.Optional `json:"bestGross9"`
	BestGross18    handicapdomain.Optional `json:"bestGross18"`
	// Differentials is newest first.
	Differentials []DifferentialEntry `json:"differentials"`
}

// Profile returns the profile of a roster player or of a name that only
// appears in round history. Unknown names return playerdb.ErrNotFound.
func (s *PlayerService) Profile(ctx context.Context, name string) (Profile, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "Profile", name, func(ctx context.Context) (Profile, error) {
		snap := s.store.Snapshot()
		rounds := snap.Rounds.History(rounddb.ForPlayer(name))
		onRoster := snap.Players.Has(name)
		if !onRoster && len(rounds) == 0 {
			return Profile{}, fmt.Errorf("%w: %q", playerdb.ErrNotFound, name)
		}

		p := Profile{
			Name:           name,
			OnRoster:       onRoster,
			ExplicitIndex:  snap.ExplicitIndex(name),
			DerivedIndex:   snap.DerivedIndex(name),
			EffectiveIndex: snap.IndexFor(name),
			RoundsPlayed:   len(rounds),
			BestGross9:     handicapdomain.None(),
			BestGross18:    handicapdomain.None(),
			Differentials:  []DifferentialEntry{},
		}
		for _, r := range rounds {
			gross := r.Gross(name)
			// Untouched cards never set a best, matching the leaderboard.
			if gross > 0 {
				switch r.HoleCount {
				case 9:
					p.BestGross9 = p.BestGross9.Min(handicapdomain.Some(gross))
				case 18:
					p.BestGross18 = p.BestGross18.Min(handicapdomain.Some(gross))
				}
			}
			if d, ok := r.Differentials[name]; ok {
				p.Differentials = append(p.Differentials, DifferentialEntry{
					RoundID:      r.ID,
					Timestamp:    r.Timestamp,
					CourseName:   r.CourseName,
					HoleCount:    r.HoleCount,
					Gross:        gross,
					Differential: d,
				})
			}
		}
		return p, nil
	})
}
