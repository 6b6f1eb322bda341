package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Black-And-White-Club/golf-tracker/app/eventbus"
	"github.com/Black-And-White-Club/golf-tracker/app/kvstore"
	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/repositories"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
)

// Storage keys of the two persisted collections.
const (
	PlayersKey = "golf_players_v1"
	RoundsKey  = "golf_rounds_v1"
)

// Publisher receives an event after every committed mutation.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Store serializes mutations of the application state. Each mutation works
// on a clone, persists it and only then swaps it in, so readers never see a
// half-applied change and a failed write leaves the state untouched.
type Store struct {
	mu        sync.Mutex
	kv        kvstore.Store
	publisher Publisher
	logger    *slog.Logger
	current   *State
}

// NewStore returns a store holding an empty state. Call Load to read the
// persisted collections. publisher may be nil.
func NewStore(kv kvstore.Store, publisher Publisher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, publisher: publisher, logger: logger, current: Empty()}
}

// Load replaces the in-memory state with the persisted one. Absent keys are
// empty collections; unreadable documents are an error.
func (s *Store) Load(ctx context.Context) error {
	next := Empty()

	players, err := s.read(ctx, PlayersKey)
	if err != nil {
		return err
	}
	if players != nil {
		if err := decodePlayers(players, next); err != nil {
			return fmt.Errorf("failed to load %s: %w", PlayersKey, err)
		}
	}

	rounds, err := s.read(ctx, RoundsKey)
	if err != nil {
		return err
	}
	if rounds != nil {
		if err := decodeRounds(rounds, next); err != nil {
			return fmt.Errorf("failed to load %s: %w", RoundsKey, err)
		}
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "State loaded",
		slog.Int("players", next.Players.Len()),
		slog.Int("rounds", next.Rounds.Len()),
	)
	return nil
}

func (s *Store) read(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Snapshot returns a private copy of the current state.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// View runs fn against the current state under the store lock. fn must not
// retain or modify the state.
func (s *Store) View(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.current)
}

type collection int

const (
	playersCollection collection = 1 << iota
	roundsCollection
)

func (s *Store) mutate(ctx context.Context, touched collection, fn func(next *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(ctx, next, touched); err != nil {
		return err
	}
	s.current = next
	return nil
}

func (s *Store) persist(ctx context.Context, st *State, touched collection) error {
	entries := make(map[string][]byte, 2)
	if touched&playersCollection != 0 {
		data, err := json.Marshal(st.Players.List())
		if err != nil {
			return fmt.Errorf("failed to encode players: %w", err)
		}
		entries[PlayersKey] = data
	}
	if touched&roundsCollection != 0 {
		data, err := json.Marshal(st.Rounds.All())
		if err != nil {
			return fmt.Errorf("failed to encode rounds: %w", err)
		}
		entries[RoundsKey] = data
	}
	if err := s.kv.PutMany(ctx, entries); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func (s *Store) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish state event",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
	}
}

func duplicatePlayer(name string) error {
	return &DuplicateKeyError{Kind: "player", Key: name, Err: playerdb.ErrDuplicatePlayer}
}

// AddPlayer appends a player to the roster.
func (s *Store) AddPlayer(ctx context.Context, p playerdomain.Player) (playerdomain.Player, error) {
	err := s.mutate(ctx, playersCollection, func(next *State) error {
		if err := next.Players.Add(p); err != nil {
			if errors.Is(err, playerdb.ErrDuplicatePlayer) {
				return duplicatePlayer(p.Name)
			}
			return err
		}
		p, _ = next.Players.Get(p.Name)
		return nil
	})
	if err != nil {
		return playerdomain.Player{}, err
	}
	s.publish(ctx, eventbus.TopicPlayerAdded, eventbus.PlayerEvent{Name: p.Name, HandicapIndex: p.HandicapIndex})
	return p, nil
}

// EditPlayer renames a player and sets their index. A rename migrates every
// round before the new state becomes visible. The new name may not belong to
// another roster entry or to a name already present in round history.
func (s *Store) EditPlayer(ctx context.Context, name, newName string, index handicapdomain.Index) (playerdomain.Player, error) {
	var (
		updated  playerdomain.Player
		migrated int
	)
	err := s.mutate(ctx, playersCollection|roundsCollection, func(next *State) error {
		p, err := next.Players.Edit(name, newName, index)
		if err != nil {
			if errors.Is(err, playerdb.ErrDuplicatePlayer) {
				return duplicatePlayer(newName)
			}
			return err
		}
		if p.Name != name {
			for _, existing := range next.Rounds.PlayerNames() {
				if existing == p.Name {
					return duplicatePlayer(p.Name)
				}
			}
			migrated = next.Rounds.RenamePlayer(name, p.Name)
		}
		updated = p
		return nil
	})
	if err != nil {
		return playerdomain.Player{}, err
	}

	event := eventbus.PlayerEvent{Name: updated.Name, HandicapIndex: updated.HandicapIndex, RoundsMigrated: migrated}
	if updated.Name != name {
		event.PreviousName = name
	}
	s.publish(ctx, eventbus.TopicPlayerUpdated, event)
	return updated, nil
}

// DeletePlayer removes a player from the roster. Their rounds are kept.
func (s *Store) DeletePlayer(ctx context.Context, name string) error {
	err := s.mutate(ctx, playersCollection, func(next *State) error {
		return next.Players.Delete(name)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, eventbus.TopicPlayerDeleted, eventbus.PlayerEvent{Name: name})
	return nil
}

// NextID returns the id for a new round saved at now: its Unix milliseconds,
// bumped past the largest stored id so ids keep increasing.
func NextID(now time.Time, maxID int64) int64 {
	id := now.UnixMilli()
	if id <= maxID {
		id = maxID + 1
	}
	return id
}

// SaveDraft finalizes a draft and stores it. A draft loaded from a saved
// round keeps its id and replaces that round in place.
func (s *Store) SaveDraft(ctx context.Context, d *rounddomain.Draft, now time.Time) (rounddomain.RoundRecord, error) {
	var saved rounddomain.RoundRecord
	err := s.mutate(ctx, roundsCollection, func(next *State) error {
		id := d.ID
		if id == 0 {
			id = NextID(now, next.Rounds.MaxID())
		}
		record, err := d.Finalize(id, now)
		if err != nil {
			return err
		}
		saved, err = next.Rounds.Save(record)
		return err
	})
	if err != nil {
		return rounddomain.RoundRecord{}, err
	}
	s.publish(ctx, eventbus.TopicRoundSaved, roundEvent(saved))
	return saved, nil
}

// PutRound stores a complete record, replacing any round with the same id.
// Differentials are recomputed from its strokes.
func (s *Store) PutRound(ctx context.Context, record rounddomain.RoundRecord) (rounddomain.RoundRecord, error) {
	var saved rounddomain.RoundRecord
	err := s.mutate(ctx, roundsCollection, func(next *State) error {
		record = record.Clone()
		if record.ID == 0 {
			record.ID = NextID(time.Now(), next.Rounds.MaxID())
		}
		record.Normalize()
		record.ComputeDifferentials()
		var err error
		saved, err = next.Rounds.Save(record)
		return err
	})
	if err != nil {
		return rounddomain.RoundRecord{}, err
	}
	s.publish(ctx, eventbus.TopicRoundSaved, roundEvent(saved))
	return saved, nil
}

// DeleteRound removes a round. Deleting an unknown id is not an error; the
// result reports whether anything was removed.
func (s *Store) DeleteRound(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	_, err := s.current.Rounds.FindByID(id)
	s.mu.Unlock()
	if errors.Is(err, rounddb.ErrNotFound) {
		return false, nil
	}

	var removed bool
	err = s.mutate(ctx, roundsCollection, func(next *State) error {
		removed = next.Rounds.Delete(id)
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.publish(ctx, eventbus.TopicRoundDeleted, eventbus.RoundEvent{ID: id})
	}
	return removed, nil
}

func roundEvent(r rounddomain.RoundRecord) eventbus.RoundEvent {
	return eventbus.RoundEvent{ID: r.ID, CourseName: r.CourseName, HoleCount: r.HoleCount, Players: r.Players}
}
