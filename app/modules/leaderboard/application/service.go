package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"

	leaderboarddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
)

const serviceName = "LeaderboardService"

// LeaderboardService implements the Service interface. It holds no state of
// its own; every call ranks the current snapshot.
type LeaderboardService struct {
	store     Snapshotter
	telemetry observability.Telemetry
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(store Snapshotter, obs *observability.Observability) *LeaderboardService {
	if obs == nil {
		obs = observability.NewNop()
	}
	return &LeaderboardService{
		store:     store,
		telemetry: obs.ForService(serviceName),
	}
}

// CourseLeaderboard ranks every player who has played course. Course names
// match exactly.
func (s *LeaderboardService) CourseLeaderboard(ctx context.Context, course string, bucket leaderboarddomain.Bucket, scoreType leaderboarddomain.ScoreType) (leaderboarddomain.Leaderboard, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "CourseLeaderboard", course, func(ctx context.Context) (leaderboarddomain.Leaderboard, error) {
		if course == "" {
			return leaderboarddomain.Leaderboard{}, ErrCourseRequired
		}
		if bucket != leaderboarddomain.Bucket9 && bucket != leaderboarddomain.Bucket18 {
			return leaderboarddomain.Leaderboard{}, fmt.Errorf("%w: %d", leaderboarddomain.ErrInvalidBucket, bucket)
		}
		if scoreType != leaderboarddomain.Gross && scoreType != leaderboarddomain.Net {
			return leaderboarddomain.Leaderboard{}, fmt.Errorf("%w: %q", leaderboarddomain.ErrInvalidScoreType, scoreType)
		}

		snap := s.store.Snapshot()
		rounds := snap.Rounds.Filter(rounddb.ForCourse(course))
		board := leaderboarddomain.Build(course, rounds, snap.IndexFor, bucket, scoreType)

		s.telemetry.Logger.DebugContext(ctx, "Leaderboard computed",
			slog.String("course", course),
			slog.Int("bucket", int(bucket)),
			slog.String("score_type", string(scoreType)),
			slog.Int("players", len(board.Standings)),
		)
		return board, nil
	})
}

// Courses lists the courses that have at least one round, sorted.
func (s *LeaderboardService) Courses(ctx context.Context) ([]string, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "Courses", "", func(ctx context.Context) ([]string, error) {
		return s.store.Snapshot().Rounds.SortedCourses(), nil
	})
}

var _ Service = (*LeaderboardService)(nil)
