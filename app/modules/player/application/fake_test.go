package playerservice

import (
	"context"
	"testing"
	"time"

	"github.com/Black-And-White-Club/golf-tracker/app/kvstore"
	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
	"github.com/stretchr/testify/require"
)

// FakeStore records calls and lets tests replace single operations. Unset
// funcs fall through to an in-memory state store.
type FakeStore struct {
	*state.Store
	trace []string

	AddPlayerFunc    func(ctx context.Context, p playerdomain.Player) (playerdomain.Player, error)
	EditPlayerFunc   func(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error)
	DeletePlayerFunc func(ctx context.Context, name string) error
}

func NewFakeStore(t *testing.T) *FakeStore {
	t.Helper()
	s := state.NewStore(kvstore.NewMemory(), nil, nil)
	require.NoError(t, s.Load(context.Background()))
	return &FakeStore{Store: s}
}

func (f *FakeStore) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeStore) AddPlayer(ctx context.Context, p playerdomain.Player) (playerdomain.Player, error) {
	f.trace = append(f.trace, "AddPlayer")
	if f.AddPlayerFunc != nil {
		return f.AddPlayerFunc(ctx, p)
	}
	return f.Store.AddPlayer(ctx, p)
}

func (f *FakeStore) EditPlayer(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error) {
	f.trace = append(f.trace, "EditPlayer")
	if f.EditPlayerFunc != nil {
		return f.EditPlayerFunc(ctx, name, newName, index)
	}
	return f.Store.EditPlayer(ctx, name, newName, index)
}

func (f *FakeStore) DeletePlayer(ctx context.Context, name string) error {
	f.trace = append(f.trace, "DeletePlayer")
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, name)
	}
	return f.Store.DeletePlayer(ctx, name)
}

var _ Store = (*FakeStore)(nil)

// saveRound stores a par-4 round where every player scores perHole[name] on
// each hole.
func saveRound(t *testing.T, store *FakeStore, at time.Time, course string, holes int, perHole map[string]int) rounddomain.RoundRecord {
	t.Helper()
	d := rounddomain.NewDraft(rounddomain.CourseInput{Name: course, HoleCount: holes, CourseRating: float64(holes * 4)})
	names := make([]string, 0, len(perHole))
	for name := range perHole {
		names = append(names, name)
	}
	require.NoError(t, d.Generate(names))
	for h := range d.Holes {
		require.NoError(t, d.SetPar(h, 4))
		for name, v := range perHole {
			require.NoError(t, d.SetStroke(name, h, v))
		}
	}
	r, err := store.SaveDraft(context.Background(), d, at)
	require.NoError(t, err)
	return r
}
