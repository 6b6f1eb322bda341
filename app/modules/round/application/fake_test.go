package roundservice

import (
	"context"
	"testing"
	"time"

	"github.com/Black-And-White-Club/golf-tracker/app/kvstore"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
	"github.com/stretchr/testify/require"
)

// FakeStore lets tests replace single store operations. Unset funcs fall
// through to an in-memory state store.
type FakeStore struct {
	*state.Store
	trace []string

	SaveDraftFunc   func(ctx context.Context, d *rounddomain.Draft, now time.Time) (rounddomain.RoundRecord, error)
	PutRoundFunc    func(ctx context.Context, r rounddomain.RoundRecord) (rounddomain.RoundRecord, error)
	DeleteRoundFunc func(ctx context.Context, id int64) (bool, error)
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

func (f *FakeStore) SaveDraft(ctx context.Context, d *rounddomain.Draft, now time.Time) (rounddomain.RoundRecord, error) {
	f.trace = append(f.trace, "SaveDraft")
	if f.SaveDraftFunc != nil {
		return f.SaveDraftFunc(ctx, d, now)
	}
	return f.Store.SaveDraft(ctx, d, now)
}

func (f *FakeStore) PutRound(ctx context.Context, r rounddomain.RoundRecord) (rounddomain.RoundRecord, error) {
	f.trace = append(f.trace, "PutRound")
	if f.PutRoundFunc != nil {
		return f.PutRoundFunc(ctx, r)
	}
	return f.Store.PutRound(ctx, r)
}

func (f *FakeStore) DeleteRound(ctx context.Context, id int64) (bool, error) {
	f.trace = append(f.trace, "DeleteRound")
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, id)
	}
	return f.Store.DeleteRound(ctx, id)
}

var _ Store = (*FakeStore)(nil)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*RoundService, *FakeStore, *fixedClock) {
	t.Helper()
	store := NewFakeStore(t)
	clock := &fixedClock{t: testNow}
	return NewRoundService(store, nil).WithClock(clock), store, clock
}

// saveRound stores a round of par-4 holes where each player scores
// strokes[name] on every hole.
func saveRound(t *testing.T, svc *RoundService, clock *fixedClock, at time.Time, course string, holes int, strokes map[string]int) rounddomain.RoundRecord {
	t.Helper()
	d := rounddomain.NewDraft(rounddomain.CourseInput{Name: course, HoleCount: holes})
	names := make([]string, 0, len(strokes))
	for name := range strokes {
		names = append(names, name)
	}
	require.NoError(t, d.Generate(names))
	for h := range d.Holes {
		require.NoError(t, d.SetPar(h, 4))
		for name, v := range strokes {
			require.NoError(t, d.SetStroke(name, h, v))
		}
	}
	prev := clock.t
	clock.t = at
	defer func() { clock.t = prev }()
	r, err := svc.SaveDraft(context.Background(), d)
	require.NoError(t, err)
	return r
}
