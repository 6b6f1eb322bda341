package eventbus

import handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"

const (
	TopicPlayerAdded   = "golf.player.added"
	TopicPlayerUpdated = "golf.player.updated"
	TopicPlayerDeleted = "golf.player.deleted"
	TopicRoundSaved    = "golf.round.saved"
	TopicRoundDeleted  = "golf.round.deleted"
	TopicDataImported  = "golf.data.imported"
)

// Topics lists every topic of the change feed.
var Topics = []string{
	TopicPlayerAdded,
	TopicPlayerUpdated,
	TopicPlayerDeleted,
	TopicRoundSaved,
	TopicRoundDeleted,
	TopicDataImported,
}

// PlayerEvent describes a roster change. PreviousName is set on renames.
type PlayerEvent struct {
	Name          string               `json:"name"`
	PreviousName  string               `json:"previousName,omitempty"`
	HandicapIndex handicapdomain.Index `json:"handicapIndex"`
	// RoundsMigrated counts the rounds a rename rewrote.
	RoundsMigrated int `json:"roundsMigrated,omitempty"`
}

type RoundEvent struct {
	ID         int64    `json:"id"`
	CourseName string   `json:"courseName"`
	HoleCount  int      `json:"holeCount"`
	Players    []string `json:"players"`
}

type ImportEvent struct {
	Players int `json:"players"`
	Rounds  int `json:"rounds"`
}
