package leaderboardhandlers

import "net/http"

// Handlers serves the leaderboard endpoints.
type Handlers interface {
	CourseLeaderboard(w http.ResponseWriter, r *http.Request)
}
