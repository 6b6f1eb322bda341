package playerdomain

import (
	"errors"
	"strings"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
)

// ErrEmptyName is returned for players without a usable name.
var ErrEmptyName = errors.New("player name is required")

// Player is a roster entry. Name is the case-sensitive unique key.
type Player struct {
	Name          string               `json:"name"`
	HandicapIndex handicapdomain.Index `json:"handicapIndex"`
}

// New builds a player with a trimmed name.
func New(name string, index handicapdomain.Index) (Player, error) {
	p := Player{Name: strings.TrimSpace(name), HandicapIndex: index}
	if err := p.Validate(); err != nil {
		return Player{}, err
	}
	return p, nil
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
