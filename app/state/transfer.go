package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/golf-tracker/app/eventbus"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/repositories"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
)

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func decodePlayers(raw json.RawMessage, into *State) error {
	var players []playerdomain.Player
	if !isNull(raw) {
		if err := json.Unmarshal(raw, &players); err != nil {
			return err
		}
	}
	dir, err := playerdb.NewDirectory(players)
	if err != nil {
		return err
	}
	into.Players = dir
	return nil
}

func decodeRounds(raw json.RawMessage, into *State) error {
	var rounds []rounddomain.RoundRecord
	if !isNull(raw) {
		if err := json.Unmarshal(raw, &rounds); err != nil {
			return err
		}
	}
	repo, err := rounddb.NewRepository(rounds)
	if err != nil {
		return err
	}
	into.Rounds = repo
	return nil
}

// Export returns the whole state as a document.
func (s *Store) Export() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Document()
}

// ExportJSON returns the export document as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// ImportSummary reports what an import replaced.
type ImportSummary struct {
	PlayersReplaced bool `json:"playersReplaced"`
	RoundsReplaced  bool `json:"roundsReplaced"`
	Players         int  `json:"players"`
	Rounds          int  `json:"rounds"`
}

// Import applies an export document. A key that is present replaces its
// collection, even when it holds an empty list; an absent key leaves the
// collection alone. Any problem rejects the whole document with an
// ImportError and the state stays as it was.
func (s *Store) Import(ctx context.Context, raw []byte) (ImportSummary, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ImportSummary{}, &ImportError{Reason: "malformed document", Err: err}
	}
	if doc == nil {
		return ImportSummary{}, &ImportError{Reason: "document must be an object"}
	}

	incoming := Empty()
	var (
		summary ImportSummary
		touched collection
	)
	if players, ok := doc["players"]; ok {
		if err := decodePlayers(players, incoming); err != nil {
			return ImportSummary{}, importError("players", err)
		}
		summary.PlayersReplaced = true
		touched |= playersCollection
	}
	if rounds, ok := doc["rounds"]; ok {
		if err := decodeRounds(rounds, incoming); err != nil {
			return ImportSummary{}, importError("rounds", err)
		}
		summary.RoundsReplaced = true
		touched |= roundsCollection
	}
	if touched == 0 {
		s.logger.WarnContext(ctx, "Import document has neither players nor rounds")
		return s.summarize(summary), nil
	}

	err := s.mutate(ctx, touched, func(next *State) error {
		if summary.PlayersReplaced {
			next.Players = incoming.Players
		}
		if summary.RoundsReplaced {
			next.Rounds = incoming.Rounds
		}
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}

	summary = s.summarize(summary)
	s.publish(ctx, eventbus.TopicDataImported, eventbus.ImportEvent{Players: summary.Players, Rounds: summary.Rounds})
	return summary, nil
}

func (s *Store) summarize(summary ImportSummary) ImportSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary.Players = s.current.Players.Len()
	summary.Rounds = s.current.Rounds.Len()
	return summary
}

func importError(collection string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, playerdb.ErrDuplicatePlayer):
		return &ImportError{Reason: "duplicate player name", Err: err}
	case errors.Is(err, rounddb.ErrDuplicateID):
		return &ImportError{Reason: "duplicate round id", Err: err}
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return &ImportError{Reason: fmt.Sprintf("malformed %s", collection), Err: err}
	default:
		return &ImportError{Reason: fmt.Sprintf("invalid %s", collection), Err: err}
	}
}
