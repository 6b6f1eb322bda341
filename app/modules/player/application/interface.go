package playerservice

import (
	"context"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
)

// Service manages the roster and computes player profiles.
type Service interface {
	AddPlayer(ctx context.Context, name string, index handicapdomain.Index) (playerdomain.Player, error)
	EditPlayer(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error)
	DeletePlayer(ctx context.Context, name string) error
	ListPlayers(ctx context.Context) ([]PlayerSummary, error)
	Profile(ctx context.Context, name string) (Profile, error)
}

// Store is the part of the state store the player service uses.
type Store interface {
	Snapshot() *state.State
	AddPlayer(ctx context.Context, p playerdomain.Player) (playerdomain.Player, error)
	EditPlayer(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error)
	DeletePlayer(ctx context.Context, name string) error
}
