package roundservice

import (
	"context"
	"io"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
)

// Service handles round editing, history and scorecards.
type Service interface {
	SaveDraft(ctx context.Context, d *rounddomain.Draft) (rounddomain.RoundRecord, error)
	DeleteRound(ctx context.Context, id int64) (bool, error)
	GetRound(ctx context.Context, id int64) (rounddomain.RoundRecord, error)
	History(ctx context.Context, q HistoryQuery) ([]HistoryEntry, error)
	Courses(ctx context.Context) ([]string, error)
	Scorecard(ctx context.Context, id int64) (Scorecard, error)
	PreviewScorecard(ctx context.Context, d *rounddomain.Draft) (Scorecard, error)
	HistoryChart(ctx context.Context, q HistoryQuery) ([]byte, error)
	DifferentialChart(ctx context.Context, player string) ([]byte, error)
	ExportXLSX(ctx context.Context, id int64) ([]byte, error)
	ImportXLSX(ctx context.Context, r io.Reader) (rounddomain.RoundRecord, error)
}

// Store is the part of the state store the round service uses.
type Store interface {
	Snapshot() *state.State
	SaveDraft(ctx context.Context, d *rounddomain.Draft, now time.Time) (rounddomain.RoundRecord, error)
	PutRound(ctx context.Context, r rounddomain.RoundRecord) (rounddomain.RoundRecord, error)
	DeleteRound(ctx context.Context, id int64) (bool, error)
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
