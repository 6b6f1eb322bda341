package playerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func TestAddPlayer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		index   handicapdomain.Index
		wantErr error
		calls   []string
	}{
		{"trims name", "  Ann ", handicapdomain.IndexOf(12.3), nil, []string{"AddPlayer"}},
		{"blank name", "   ", handicapdomain.NoIndex(), playerdomain.ErrEmptyName, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFakeStore(t)
			svc := NewPlayerService(store, nil)
			p, err := svc.AddPlayer(ctx, tt.input, tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Ann", p.Name)
				assert.Equal(t, tt.index, p.HandicapIndex)
			}
			assert.Equal(t, tt.calls, store.Trace())
		})
	}
}

func TestAddPlayerDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewPlayerService(NewFakeStore(t), nil)
	_, err := svc.AddPlayer(ctx, "Ann", handicapdomain.NoIndex())
	require.NoError(t, err)

	_, err = svc.AddPlayer(ctx, "Ann", handicapdomain.IndexOf(3))
	var dup *state.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Ann", dup.Key)
	assert.ErrorIs(t, err, playerdb.ErrDuplicatePlayer)

	// Names are case-sensitive.
	_, err = svc.AddPlayer(ctx, "ann", handicapdomain.NoIndex())
	assert.NoError(t, err)
}

func TestEditPlayer(t *testing.T) {
	ctx := context.Background()
	store := NewFakeStore(t)
	svc := NewPlayerService(store, nil)
	_, err := svc.AddPlayer(ctx, "Bob", handicapdomain.NoIndex())
	require.NoError(t, err)
	saveRound(t, store, day, "Pine", 9, map[string]int{"Bob": 5})

	p, err := svc.EditPlayer(ctx, "Bob", " Robert ", handicapdomain.IndexOf(8.5))
	require.NoError(t, err)
	assert.Equal(t, "Robert", p.Name)

	profile, err := svc.Profile(ctx, "Robert")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.RoundsPlayed)
	_, err = svc.Profile(ctx, "Bob")
	assert.ErrorIs(t, err, playerdb.ErrNotFound)

	_, err = svc.EditPlayer(ctx, "Robert", "", handicapdomain.NoIndex())
	assert.ErrorIs(t, err, playerdomain.ErrEmptyName)
	_, err = svc.EditPlayer(ctx, "Nobody", "Somebody", handicapdomain.NoIndex())
	assert.ErrorIs(t, err, playerdb.ErrNotFound)
}

func TestDeletePlayerKeepsHistory(t *testing.T) {
	ctx := context.Background()
	store := NewFakeStore(t)
	svc := NewPlayerService(store, nil)
	_, err := svc.AddPlayer(ctx, "Cy", handicapdomain.IndexOf(20))
	require.NoError(t, err)
	saveRound(t, store, day, "Pine", 9, map[string]int{"Cy": 6})

	require.NoError(t, svc.DeletePlayer(ctx, "Cy"))
	assert.ErrorIs(t, svc.DeletePlayer(ctx, "Cy"), playerdb.ErrNotFound)

	list, err := svc.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	profile, err := svc.Profile(ctx, "Cy")
	require.NoError(t, err)
	assert.False(t, profile.OnRoster)
	assert.Equal(t, 1, profile.RoundsPlayed)
	assert.False(t, profile.ExplicitIndex.Valid)
}

func TestDeletePlayerStoreFailure(t *testing.T) {
	store := NewFakeStore(t)
	boom := errors.New("write failed")
	store.DeletePlayerFunc = func(context.Context, string) error { return boom }

	err := NewPlayerService(store, nil).DeletePlayer(context.Background(), "Ann")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"DeletePlayer"}, store.Trace())
}

func TestListPlayers(t *testing.T) {
	ctx := context.Background()
	store := NewFakeStore(t)
	svc := NewPlayerService(store, nil)
	for _, name := range []string{"Zed", "Ann"} {
		_, err := svc.AddPlayer(ctx, name, handicapdomain.NoIndex())
		require.NoError(t, err)
	}
	_, err := svc.EditPlayer(ctx, "Ann", "Ann", handicapdomain.IndexOf(5))
	require.NoError(t, err)
	// 18 holes of 5 on a par-72, rating-72 course: differential 18.
	saveRound(t, store, day, "Pine", 18, map[string]int{"Zed": 5, "Ann": 5})

	list, err := svc.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PlayerSummary{
		{Name: "Zed", HandicapIndex: handicapdomain.NoIndex(), EffectiveIndex: handicapdomain.IndexOf(18), RoundsPlayed: 1},
		{Name: "Ann", HandicapIndex: handicapdomain.IndexOf(5), EffectiveIndex: handicapdomain.IndexOf(5), RoundsPlayed: 1},
	}, list)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	store := NewFakeStore(t)
	svc := NewPlayerService(store, nil)
	_, err := svc.AddPlayer(ctx, "Ann", handicapdomain.NoIndex())
	require.NoError(t, err)

	first := saveRound(t, store, day, "Pine", 9, map[string]int{"Ann": 5})
	second := saveRound(t, store, day.AddDate(0, 0, 1), "Pine", 9, map[string]int{"Ann": 4})
	third := saveRound(t, store, day.AddDate(0, 0, 2), "Elm", 18, map[string]int{"Ann": 6})
	// An untouched card counts as played but has no differential or best.
	saveRound(t, store, day.AddDate(0, 0, 3), "Elm", 18, map[string]int{"Ann": 0})

	p, err := svc.Profile(ctx, "Ann")
	require.NoError(t, err)
	assert.True(t, p.OnRoster)
	assert.Equal(t, 4, p.RoundsPlayed)
	assert.Equal(t, handicapdomain.Some(36), p.BestGross9)
	assert.Equal(t, handicapdomain.Some(108), p.BestGross18)

	require.Len(t, p.Differentials, 3)
	assert.Equal(t, []int64{third.ID, second.ID, first.ID}, []int64{
		p.Differentials[0].RoundID, p.Differentials[1].RoundID, p.Differentials[2].RoundID,
	})
	assert.Equal(t, 36.0, p.Differentials[0].Differential)
	assert.Equal(t, 9.0, p.Differentials[2].Differential)

	// Fewer than eight differentials: all of 9, 0 and 36 are averaged.
	assert.Equal(t, handicapdomain.IndexOf(15), p.DerivedIndex)
	assert.Equal(t, p.DerivedIndex, p.EffectiveIndex)
	assert.False(t, p.ExplicitIndex.Valid)

	_, err = svc.Profile(ctx, "Nobody")
	assert.ErrorIs(t, err, playerdb.ErrNotFound)
}
