package playerdb

import (
	"fmt"
	"slices"
	"strings"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	playerdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/player/domain"
)

// Directory is the ordered player roster. Names are unique and compared
// case-sensitively. It is not safe for concurrent use; the state store
// serializes access.
type Directory struct {
	players []playerdomain.Player
}

// NewDirectory returns a directory holding copies of players in order. It
// fails on an empty or duplicated name.
func NewDirectory(players []playerdomain.Player) (*Directory, error) {
	d := &Directory{players: make([]playerdomain.Player, 0, len(players))}
	for _, p := range players {
		if err := d.Add(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Directory) index(name string) int {
	return slices.IndexFunc(d.players, func(p playerdomain.Player) bool { return p.Name == name })
}

// Add appends a player to the roster.
func (d *Directory) Add(p playerdomain.Player) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	if d.index(p.Name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.Name)
	}
	d.players = append(d.players, p)
	return nil
}

// Get returns the player with the given name.
func (d *Directory) Get(name string) (playerdomain.Player, error) {
	i := d.index(name)
	if i < 0 {
		return playerdomain.Player{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return d.players[i], nil
}

// Has reports whether name is on the roster.
func (d *Directory) Has(name string) bool {
	return d.index(name) >= 0
}

// List returns the roster in insertion order.
func (d *Directory) List() []playerdomain.Player {
	return slices.Clone(d.players)
}

// Names returns the roster names in insertion order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.players))
	for i, p := range d.players {
		names[i] = p.Name
	}
	return names
}

// Edit changes a player's name and index in place, keeping its position.
// Renaming onto another existing player fails. Round records are not touched
// here; the caller migrates them.
func (d *Directory) Edit(name, newName string, index handicapdomain.Index) (playerdomain.Player, error) {
	i := d.index(name)
	if i < 0 {
		return playerdomain.Player{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	updated, err := playerdomain.New(newName, index)
	if err != nil {
		return playerdomain.Player{}, err
	}
	if updated.Name != name && d.index(updated.Name) >= 0 {
		return playerdomain.Player{}, fmt.Errorf("%w: %q", ErrDuplicatePlayer, updated.Name)
	}
	d.players[i] = updated
	return updated, nil
}

// Delete removes a player from the roster only. Rounds keep the name.
func (d *Directory) Delete(name string) error {
	i := d.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	d.players = slices.Delete(d.players, i, i+1)
	return nil
}

func (d *Directory) Len() int {
	return len(d.players)
}

func (d *Directory) Clone() *Directory {
	return &Directory{players: slices.Clone(d.players)}
}
