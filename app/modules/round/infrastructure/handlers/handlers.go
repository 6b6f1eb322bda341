package roundhandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Black-And-White-Club/golf-tracker/app/httpapi"
	roundservice "github.com/Black-And-White-Club/golf-tracker/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RoundHandlers serves rounds, history, scorecards and charts.
type RoundHandlers struct {
	RoundService roundservice.Service
	logger       *slog.Logger
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(roundService roundservice.Service, logger *slog.Logger) *RoundHandlers {
	return &RoundHandlers{
		RoundService: roundService,
		logger:       logger,
	}
}

// Routes mounts the handlers on r, relative to /api/rounds.
func (h *RoundHandlers) Routes(r chi.Router) {
	r.Get("/", h.History)
	r.Post("/", h.SaveDraft)
	r.Post("/preview", h.PreviewScorecard)
	r.Get("/chart.png", h.HistoryChart)
	r.Post("/import.xlsx", h.ImportXLSX)
	r.Route("/{roundID}", func(r chi.Router) {
		r.Get("/", h.GetRound)
		r.Delete("/", h.DeleteRound)
		r.Get("/scorecard", h.Scorecard)
		r.Get("/export.xlsx", h.ExportXLSX)
	})
}

// DraftRequest is a round as entered: course metadata, selected players,
// per-hole pars and stroke indexes and per-player strokes. ID is set when
// re-saving an existing round.
type DraftRequest struct {
	ID      int64                   `json:"id"`
	Course  rounddomain.CourseInput `json:"course"`
	Players []string                `json:"players"`
	Holes   []rounddomain.Hole      `json:"holes"`
	Scores  map[string][]int        `json:"scores"`
}

// Draft builds a draft through the same setters as manual entry, so values
// are clamped. Positions beyond the hole count are rejected.
func (req DraftRequest) Draft() (*rounddomain.Draft, error) {
	if err := req.Course.Validate(); err != nil {
		return nil, err
	}
	d := rounddomain.NewDraft(req.Course)
	d.ID = req.ID
	if err := d.Generate(req.Players); err != nil {
		return nil, err
	}
	for i, hole := range req.Holes {
		if err := d.SetPar(i, hole.Par); err != nil {
			return nil, err
		}
		if hole.StrokeIndex > 0 {
			if err := d.SetStrokeIndex(i, hole.StrokeIndex); err != nil {
				return nil, err
			}
		}
	}
	for name, strokes := range req.Scores {
		for i, v := range strokes {
			if err := d.SetStroke(name, i, v); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func (h *RoundHandlers) decodeDraft(w http.ResponseWriter, r *http.Request) (*rounddomain.Draft, bool) {
	var req DraftRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, r, h.logger, err)
		return nil, false
	}
	d, err := req.Draft()
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return nil, false
	}
	return d, true
}

func (h *RoundHandlers) roundID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "roundID"), 10, 64)
	if err != nil || id <= 0 {
		httpapi.WriteJSON(w, http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid round ID"})
		return 0, false
	}
	return id, true
}

// SaveDraft stores a new round, or replaces one when the request has an id.
func (h *RoundHandlers) SaveDraft(w http.ResponseWriter, r *http.Request) {
	d, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	saved, err := h.RoundService.SaveDraft(r.Context(), d)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	status := http.StatusCreated
	if d.ID != 0 {
		status = http.StatusOK
	}
	httpapi.WriteJSON(w, status, saved)
}

// PreviewScorecard computes the scorecard of an unsaved round.
func (h *RoundHandlers) PreviewScorecard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	card, err := h.RoundService.PreviewScorecard(r.Context(), d)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, card)
}

func historyQuery(r *http.Request) (roundservice.HistoryQuery, error) {
	q := r.URL.Query()
	query := roundservice.HistoryQuery{
		Player: q.Get("player"),
		Course: q.Get("course"),
		Since:  q.Get("since"),
	}
	if holes := q.Get("holes"); holes != "" {
		n, err := strconv.Atoi(holes)
		if err != nil || !rounddomain.ValidHoleCount(n) {
			return query, fmt.Errorf("%w: holes=%q", rounddomain.ErrInvalidHoleCount, holes)
		}
		query.HoleCount = n
	}
	return query, nil
}

// History lists rounds newest first, filtered by player, course, holes and since.
func (h *RoundHandlers) History(w http.ResponseWriter, r *http.Request) {
	q, err := historyQuery(r)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	entries, err := h.RoundService.History(r.Context(), q)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, entries)
}

func (h *RoundHandlers) HistoryChart(w http.ResponseWriter, r *http.Request) {
	q, err := historyQuery(r)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	png, err := h.RoundService.HistoryChart(r.Context(), q)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteBytes(w, "image/png", "", png)
}

func (h *RoundHandlers) GetRound(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roundID(w, r)
	if !ok {
		return
	}
	round, err := h.RoundService.GetRound(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, round)
}

// DeleteRound answers 204 when a round was removed and 404 otherwise.
func (h *RoundHandlers) DeleteRound(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roundID(w, r)
	if !ok {
		return
	}
	removed, err := h.RoundService.DeleteRound(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	if !removed {
		httpapi.WriteJSON(w, http.StatusNotFound, httpapi.ErrorResponse{Error: "round not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RoundHandlers) Scorecard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roundID(w, r)
	if !ok {
		return
	}
	card, err := h.RoundService.Scorecard(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, card)
}

func (h *RoundHandlers) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roundID(w, r)
	if !ok {
		return
	}
	data, err := h.RoundService.ExportXLSX(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteBytes(w, xlsxContentType, fmt.Sprintf("round-%d.xlsx", id), data)
}

// ImportXLSX accepts the spreadsheet as the raw request body.
func (h *RoundHandlers) ImportXLSX(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, httpapi.MaxBodyBytes)
	round, err := h.RoundService.ImportXLSX(r.Context(), body)
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, round)
}

func (h *RoundHandlers) Courses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.RoundService.Courses(r.Context())
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, courses)
}

// PlayerChart renders a player's differential history. It is mounted under
// /api/players/{name}.
func (h *RoundHandlers) PlayerChart(w http.ResponseWriter, r *http.Request) {
	png, err := h.RoundService.DifferentialChart(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httpapi.Error(w, r, h.logger, err)
		return
	}
	httpapi.WriteBytes(w, "image/png", "", png)
}

var _ Handlers = (*RoundHandlers)(nil)
