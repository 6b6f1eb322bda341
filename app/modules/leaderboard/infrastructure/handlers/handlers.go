package leaderboardhandlers

import (
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/golf-tracker/app/httpapi"
	leaderboardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/application"
	leaderboarddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/domain"
	"github.com/go-chi/chi/v5"
)

// LeaderboardHandlers serves course leaderboards.
type LeaderboardHandlers struct {
	leaderboardService leaderboardservice.Service
	logger             *slog.Logger
}

// NewLeaderboardHandlers creates a new instance of LeaderboardHandlers.
func NewLeaderboardHandlers(leaderboardService leaderboardservice.Service, logger *slog.Logger) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// Routes mounts the handlers on r, relative to /api/leaderboard.
func (h *LeaderboardHandlers) Routes(r chi.Router) {
	r.Get("/{course}", h.CourseLeaderboard)
}

// CourseLeaderboard answers GET /api/leaderboard/{course}?holes=9|18&sort=gross|net.
// Both parameters are optional and default to 18 holes and gross.
func (h *LeaderboardHandlers) CourseLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bucket, err := leaderboarddomain.ParseBucket(q.Get("holes"))
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	scoreType, err := leaderboarddomain.ParseScoreType(q.Get("sort"))
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}

	board, err := h.leaderboardService.CourseLeaderboard(r.Context(), chi.URLParam(r, "course"), bucket, scoreType)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, board)
}

var _ Handlers = (*LeaderboardHandlers)(nil)
