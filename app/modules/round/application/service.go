package roundservice

import (
	"context"
	"strconv"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
)

const serviceName = "RoundService"

// RoundService implements the Service interface.
type RoundService struct {
	store     Store
	telemetry observability.Telemetry
	clock     Clock
	since     *SinceParser
	palette   ChartPalette
}

// NewRoundService creates a new RoundService.
func NewRoundService(store Store, obs *observability.Observability) *RoundService {
	if obs == nil {
		obs = observability.NewNop()
	}
	return &RoundService{
		store:     store,
		telemetry: obs.ForService(serviceName),
		clock:     realClock{},
		since:     NewSinceParser(),
		palette:   DefaultPalette,
	}
}

// WithClock replaces the clock, for tests and imports of past rounds.
func (s *RoundService) WithClock(c Clock) *RoundService {
	s.clock = c
	return s
}

// SaveDraft finalizes and stores a draft. Differentials are computed from the
// strokes entered at this moment.
func (s *RoundService) SaveDraft(ctx context.Context, d *rounddomain.Draft) (rounddomain.RoundRecord, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "SaveDraft", d.Course.Name, func(ctx context.Context) (rounddomain.RoundRecord, error) {
		return s.store.SaveDraft(ctx, d, s.clock.Now())
	})
}

// DeleteRound removes a round. Unknown ids report false without error.
func (s *RoundService) DeleteRound(ctx context.Context, id int64) (bool, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "DeleteRound", strconv.FormatInt(id, 10), func(ctx context.Context) (bool, error) {
		return s.store.DeleteRound(ctx, id)
	})
}

// GetRound returns a saved round or rounddb.ErrNotFound.
func (s *RoundService) GetRound(ctx context.Context, id int64) (rounddomain.RoundRecord, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "GetRound", strconv.FormatInt(id, 10), func(ctx context.Context) (rounddomain.RoundRecord, error) {
		return s.store.Snapshot().Rounds.FindByID(id)
	})
}

// Courses lists the courses used so far, sorted.
func (s *RoundService) Courses(ctx context.Context) ([]string, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "Courses", "", func(ctx context.Context) ([]string, error) {
		return s.store.Snapshot().Rounds.SortedCourses(), nil
	})
}

var _ Service = (*RoundService)(nil)
