package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/application"
	leaderboarddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/domain"
)

type leaderboardCall struct {
	course    string
	bucket    leaderboarddomain.Bucket
	scoreType leaderboarddomain.ScoreType
}

// FakeLeaderboardService records the leaderboards requested from it.
type FakeLeaderboardService struct {
	calls                 []leaderboardCall
	CourseLeaderboardFunc func(ctx context.Context, course string, b leaderboarddomain.Bucket, t leaderboarddomain.ScoreType) (leaderboarddomain.Leaderboard, error)
}

func (f *FakeLeaderboardService) CourseLeaderboard(ctx context.Context, course string, b leaderboarddomain.Bucket, t leaderboarddomain.ScoreType) (leaderboarddomain.Leaderboard, error) {
	f.calls = append(f.calls, leaderboardCall{course: course, bucket: b, scoreType: t})
	if f.CourseLeaderboardFunc != nil {
		return f.CourseLeaderboardFunc(ctx, course, b, t)
	}
	return leaderboarddomain.Leaderboard{Course: course, Bucket: b, ScoreType: t, Empty: true, Standings: []leaderboarddomain.Standing{}}, nil
}

func (f *FakeLeaderboardService) Courses(context.Context) ([]string, error) {
	return []string{}, nil
}

var _ leaderboardservice.Service = (*FakeLeaderboardService)(nil)
