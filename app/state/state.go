// Package state owns the application state (roster and round repository)
// and persists it through a kvstore.Store.
package state

import (
	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/golf-tracker/app/modules/player/infrastructure/repositories"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
)

// State is the explicit application state. Readers get a private copy from
// Store.Snapshot and may use it freely.
type State struct {
	Players *playerdb.Directory
	Rounds  *rounddb.Repository
}

// Empty returns a state with no players and no rounds.
func Empty() *State {
	players, _ := playerdb.NewDirectory(nil)
	rounds, _ := rounddb.NewRepository(nil)
	return &State{Players: players, Rounds: rounds}
}

func (s *State) Clone() *State {
	return &State{Players: s.Players.Clone(), Rounds: s.Rounds.Clone()}
}

// ExplicitIndex returns the roster index of a player, or no index for
// players that are not on the roster.
func (s *State) ExplicitIndex(name string) handicapdomain.Index {
	p, err := s.Players.Get(name)
	if err != nil {
		return handicapdomain.NoIndex()
	}
	return p.HandicapIndex
}

// DerivedIndex derives a player's index from their most recent differentials.
func (s *State) DerivedIndex(name string) handicapdomain.Index {
	recent := handicapdomain.RecentDifferentials(s.Rounds.DifferentialsFor(name))
	return handicapdomain.DerivedHandicapIndex(recent)
}

// IndexFor is the effective index: explicit if set, derived otherwise.
func (s *State) IndexFor(name string) handicapdomain.Index {
	return handicapdomain.ResolveIndex(s.ExplicitIndex(name), s.Rounds.DifferentialsFor(name))
}

// Document is the persisted and exported shape of the state.
type Document struct {
	Players []playerdomain.Player     `json:"players"`
	Rounds  []rounddomain.RoundRecord `json:"rounds"`
}

func (s *State) Document() Document {
	return Document{Players: s.Players.List(), Rounds: s.Rounds.All()}
}
