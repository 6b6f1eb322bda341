package leaderboardservice

import (
	"testing"
	"time"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
)

// FakeSnapshotter serves a fixed state and counts how often it was read.
type FakeSnapshotter struct {
	State *state.State
	Reads int
}

func (f *FakeSnapshotter) Snapshot() *state.State {
	f.Reads++
	return f.State.Clone()
}

var _ Snapshotter = (*FakeSnapshotter)(nil)

type fixture struct {
	t     *testing.T
	state *state.State
	next  int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, state: state.Empty(), next: 1}
}

func (f *fixture) player(name string, index handicapdomain.Index) *fixture {
	f.t.Helper()
	if err := f.state.Players.Add(playerdomain.Player{Name: name, HandicapIndex: index}); err != nil {
		f.t.Fatalf("add player %q: %v", name, err)
	}
	return f
}

// round saves a par-4 round on course where each player's strokes are
// spread so the gross equals gross[name].
func (f *fixture) round(course string, holes int, gross map[string]int) *fixture {
	f.t.Helper()
	d := rounddomain.NewDraft(rounddomain.CourseInput{Name: course, HoleCount: holes, CourseRating: float64(holes * 4)})
	names := make([]string, 0, len(gross))
	for name := range gross {
		names = append(names, name)
	}
	if err := d.Generate(names); err != nil {
		f.t.Fatal(err)
	}
	for h := range d.Holes {
		_ = d.SetPar(h, 4)
	}
	for name, total := range gross {
		for h := 0; h < holes && total > 0; h++ {
			v := min(total, rounddomain.MaxStrokes)
			if h < holes-1 {
				v = min(v, 5)
			}
			_ = d.SetStroke(name, h, v)
			total -= v
		}
	}
	r, err := d.Finalize(f.next, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(f.next)))
	if err != nil {
		f.t.Fatal(err)
	}
	if _, err := f.state.Rounds.Save(r); err != nil {
		f.t.Fatal(err)
	}
	f.next++
	return f
}

func (f *fixture) service() (*LeaderboardService, *FakeSnapshotter) {
	snap := &FakeSnapshotter{State: f.state}
	return NewLeaderboardService(snap, nil), snap
}
