package playerhandlers

import (
	"context"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerservice "github.com/Black-And-White-Club/golf-tracker/app/modules/player/application"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
)

// FakeService is a programmable playerservice.Service.
type FakeService struct {
	AddPlayerFunc    func(ctx context.Context, name string, index handicapdomain.Index) (playerdomain.Player, error)
	EditPlayerFunc   func(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error)
	DeletePlayerFunc func(ctx context.Context, name string) error
	ListPlayersFunc  func(ctx context.Context) ([]playerservice.PlayerSummary, error)
	ProfileFunc      func(ctx context.Context, name string) (playerservice.Profile, error)
}

func (f *FakeService) AddPlayer(ctx context.Context, name string, index handicapdomain.Index) (playerdomain.Player, error) {
	if f.AddPlayerFunc != nil {
		return f.AddPlayerFunc(ctx, name, index)
	}
	return playerdomain.Player{Name: name, HandicapIndex: index}, nil
}

func (f *FakeService) EditPlayer(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error) {
	if f.EditPlayerFunc != nil {
		return f.EditPlayerFunc(ctx, name, newName, index)
	}
	return playerdomain.Player{Name: newName, HandicapIndex: index}, nil
}

func (f *FakeService) DeletePlayer(ctx context.Context, name string) error {
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, name)
	}
	return nil
}

func (f *FakeService) ListPlayers(ctx context.Context) ([]playerservice.PlayerSummary, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return []playerservice.PlayerSummary{}, nil
}

func (f *FakeService) Profile(ctx context.Context, name string) (playerservice.Profile, error) {
	if f.ProfileFunc != nil {
		return f.ProfileFunc(ctx, name)
	}
	return playerservice.Profile{Name: name}, nil
}

var _ playerservice.Service = (*FakeService)(nil)
