package playerservice

import (
	"context"
	"strings"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
)

const serviceName = "PlayerService"

// PlayerService implements the Service interface.
type PlayerService struct {
	store     Store
	telemetry observability.Telemetry
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(store Store, obs *observability.Observability) *PlayerService {
	if obs == nil {
		obs = observability.NewNop()
	}
	return &PlayerService{
		store:     store,
		telemetry: obs.ForService(serviceName),
	}
}

// AddPlayer adds a player to the roster. An invalid index means none is set.
func (s *PlayerService) AddPlayer(ctx context.Context, name string, index handicapdomain.Index) (playerdomain.Player, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "AddPlayer", name, func(ctx context.Context) (playerdomain.Player, error) {
		p, err := playerdomain.New(name, index)
		if err != nil {
			return playerdomain.Player{}, err
		}
		return s.store.AddPlayer(ctx, p)
	})
}

// EditPlayer renames a player and replaces their index. Renames carry over
// to every saved round.
func (s *PlayerService) EditPlayer(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "EditPlayer", name, func(ctx context.Context) (playerdomain.Player, error) {
		if strings.TrimSpace(newName) == "" {
			return playerdomain.Player{}, playerdomain.ErrEmptyName
		}
		return s.store.EditPlayer(ctx, name, strings.TrimSpace(newName), index)
	})
}

// DeletePlayer removes a player from the roster. Their rounds stay in history.
func (s *PlayerService) DeletePlayer(ctx context.Context, name string) error {
	_, err := observability.WithTelemetry(ctx, s.telemetry, "DeletePlayer", name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.store.DeletePlayer(ctx, name)
	})
	return err
}

// PlayerSummary is one roster line.
type PlayerSummary struct {
	Name           string               `json:"name"`
	HandicapIndex  handicapdomain.Index `json:"handicapIndex"`
	EffectiveIndex handicapdomain.Index `json:"effectiveIndex"`
	RoundsPlayed   int                  `json:"roundsPlayed"`
}

// ListPlayers returns the roster in insertion order.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]PlayerSummary, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "ListPlayers", "", func(ctx context.Context) ([]PlayerSummary, error) {
		snap := s.store.Snapshot()
		players := snap.Players.List()
		out := make([]PlayerSummary, 0, len(players))
		for _, p := range players {
			out = append(out, PlayerSummary{
				Name:           p.Name,
				HandicapIndex:  p.HandicapIndex,
				EffectiveIndex: snap.IndexFor(p.Name),
				RoundsPlayed:   len(snap.Rounds.Filter(rounddb.ForPlayer(p.Name))),
			})
		}
		return out, nil
	})
}

var _ Service = (*PlayerService)(nil)
