// Package httpapi holds the JSON response helpers shared by the HTTP
// handlers and the mapping from domain errors to status codes.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	leaderboardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/application"
	leaderboarddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/repositories"
	roundservice "github.com/Black-And-White-Club/golf-tracker/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
)

// MaxBodyBytes bounds request bodies, including uploaded spreadsheets.
const MaxBodyBytes = 8 << 20

// ErrInvalidBody is returned for request bodies that cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

var badRequest = []error{
	ErrInvalidBody,
	playerdomain.ErrEmptyName,
	rounddomain.ErrNoPlayers,
	rounddomain.ErrInvalidRound,
	rounddomain.ErrInvalidHoleCount,
	rounddomain.ErrHoleOutOfRange,
	rounddomain.ErrUnknownPlayer,
	leaderboarddomain.ErrInvalidBucket,
	leaderboarddomain.ErrInvalidScoreType,
	leaderboardservice.ErrCourseRequired,
	roundservice.ErrUnrecognizedSince,
	roundservice.ErrInvalidScorecard,
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	var (
		dup *state.DuplicateKeyError
		imp *state.ImportError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &dup),
		errors.Is(err, playerdb.ErrDuplicatePlayer),
		errors.Is(err, rounddb.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, playerdb.ErrNotFound), errors.Is(err, rounddb.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &imp):
		return http.StatusBadRequest
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("Failed to encode response", slog.Any("error", err))
	}
}

// Error writes err as JSON. Server errors are logged and their details
// withheld from the client.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.ErrorContext(r.Context(), "Request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
		}
		msg = http.StatusText(status)
	}
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// Decode reads a JSON request body into v. Unknown fields are rejected.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// WriteBytes sends a binary payload such as a chart or a spreadsheet.
func WriteBytes(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
