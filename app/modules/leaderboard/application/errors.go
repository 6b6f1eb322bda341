package leaderboardservice

import "errors"

// ErrCourseRequired is returned when no course is selected.
var ErrCourseRequired = errors.New("course is required")
