package app

import (
	"io"
	"net/http"

	"github.com/Black-And-White-Club/golf-tracker/app/httpapi"
	leaderboardhandlers "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/infrastructure/handlers"
	playerhandlers "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/handlers"
	roundhandlers "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Router builds the HTTP API.
func (app *App) Router() http.Handler {
	players := playerhandlers.NewPlayerHandlers(app.PlayerService, app.Logger)
	rounds := roundhandlers.NewRoundHandlers(app.RoundService, app.Logger)
	leaderboards := leaderboardhandlers.NewLeaderboardHandlers(app.LeaderboardService, app.Logger)
	limiter := NewIPRateLimiter(rate.Limit(app.Config.HTTP.RateLimitRPS), app.Config.HTTP.RateBurst)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(app.Logger))

	r.Get("/healthz", app.Health)
	if app.Observability.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(app.Observability.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		if app.Config.HTTP.RateLimitRPS > 0 {
			r.Use(RateLimitMiddleware(limiter))
		}
		r.Route("/players", func(r chi.Router) {
			players.Routes(r)
			r.Get("/{name}/chart.png", rounds.PlayerChart)
		})
		r.Route("/rounds", rounds.Routes)
		r.Get("/courses", rounds.Courses)
		r.Route("/leaderboard", leaderboards.Routes)
		r.Get("/export", app.ExportJSON)
		r.Post("/import", app.ImportJSON)
	})
	return r
}

// Health reports liveness and the size of the loaded state.
func (app *App) Health(w http.ResponseWriter, r *http.Request) {
	snap := app.Store.Snapshot()
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"players": snap.Players.Len(),
		"rounds":  snap.Rounds.Len(),
	})
}

// ExportJSON downloads the whole state as one JSON document.
func (app *App) ExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := app.Store.ExportJSON()
	if err != nil {
		httpapi.Error(w, r, app.Logger, err)
		return
	}
	httpapi.WriteBytes(w, "application/json", "golf-export.json", data)
}

// ImportJSON replaces the collections present in the uploaded document.
func (app *App) ImportJSON(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, httpapi.MaxBodyBytes))
	if err != nil {
		httpapi.WriteJSON(w, http.StatusRequestEntityTooLarge, httpapi.ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := app.Store.Import(r.Context(), raw)
	if err != nil {
		httpapi.Error(w, r, app.Logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, summary)
}
