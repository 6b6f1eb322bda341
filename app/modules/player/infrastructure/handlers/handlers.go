package playerhandlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Black-And-White-Club/golf-tracker/app/httpapi"
	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerservice "github.com/Black-And-White-Club/golf-tracker/app/modules/player/application"
	"github.com/go-chi/chi/v5"
)

// PlayerRequest is the body of create and update requests. A missing or
// null handicapIndex means no explicit index.
type PlayerRequest struct {
	Name          string               `json:"name"`
	HandicapIndex handicapdomain.Index `json:"handicapIndex"`
}

// PlayerHandlers serves the roster endpoints.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger) *PlayerHandlers {
	return &PlayerHandlers{service: service, logger: logger}
}

// Routes mounts the handlers on r, relative to /api/players.
func (h *PlayerHandlers) Routes(r chi.Router) {
	r.Get("/", h.ListPlayers)
	r.Post("/", h.AddPlayer)
	r.Put("/{name}", h.EditPlayer)
	r.Delete("/{name}", h.DeletePlayer)
	r.Get("/{name}/profile", h.Profile)
}

func (h *PlayerHandlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ListPlayers(r.Context())
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, players)
}

func (h *PlayerHandlers) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	p, err := h.service.AddPlayer(r.Context(), req.Name, req.HandicapIndex)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, p)
}

// EditPlayer renames and re-rates a player. An empty name keeps the current one.
func (h *PlayerHandlers) EditPlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req PlayerRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		req.Name = name
	}
	p, err := h.service.EditPlayer(r.Context(), name, req.Name, req.HandicapIndex)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, p)
}

func (h *PlayerHandlers) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePlayer(r.Context(), chi.URLParam(r, "name")); err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayerHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, profile)
}
