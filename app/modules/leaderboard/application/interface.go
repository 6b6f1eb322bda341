package leaderboardservice

import (
	"context"

	leaderboarddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
)

// Service computes course leaderboards.
type Service interface {
	CourseLeaderboard(ctx context.Context, course string, bucket leaderboarddomain.Bucket, scoreType leaderboarddomain.ScoreType) (leaderboarddomain.Leaderboard, error)
	Courses(ctx context.Context) ([]string, error)
}

// Snapshotter supplies the state a leaderboard is computed from.
type Snapshotter interface {
	Snapshot() *state.State
}
