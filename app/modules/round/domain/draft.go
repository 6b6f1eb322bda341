package rounddomain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrNoPlayers is returned when a scorecard is generated or saved without players.
var ErrNoPlayers = errors.New("choose at least one player for the round")

// CourseInput is the course metadata entered for a round.
type CourseInput struct {
	Name         string  `json:"courseName"`
	Area         string  `json:"area"`
	HoleCount    int     `json:"holeCount"`
	CourseRating float64 `json:"courseRating"`
	Slope        int     `json:"slope"`
	Tees         string  `json:"tees"`
}

func (c CourseInput) withDefaults() CourseInput {
	c.Name = strings.TrimSpace(c.Name)
	c.Area = strings.TrimSpace(c.Area)
	if c.HoleCount == 0 {
		c.HoleCount = DefaultHoleCount
	}
	if c.CourseRating == 0 {
		c.CourseRating = DefaultCourseRating
	}
	if c.Slope <= 0 {
		c.Slope = DefaultSlope
	}
	if c.Tees == "" {
		c.Tees = DefaultTees
	}
	return c
}

// Validate rejects a hole count the draft cannot hold. Zero means the default.
func (c CourseInput) Validate() error {
	if c.HoleCount == 0 || ValidHoleCount(c.HoleCount) {
		return nil
	}
	return fmt.Errorf("%w, got %d", ErrInvalidHoleCount, c.HoleCount)
}

// Draft is a round under active editing. It is a private copy until saved.
type Draft struct {
	// ID is zero for a new round and the saved ID when editing an existing one.
	ID      int64       `json:"id,omitempty"`
	Course  CourseInput `json:"course"`
	Holes   HoleSet     `json:"holes"`
	Scores  ScoreSheet  `json:"scores"`
	Players []string    `json:"players"`
}

// NewDraft starts an empty round on the given course.
func NewDraft(course CourseInput) *Draft {
	course = course.withDefaults()
	return &Draft{
		Course: course,
		Holes:  NewHoleSet(course.HoleCount),
		Scores: ScoreSheet{},
	}
}

// LoadDraft copies a saved round into a draft; saving it replaces the original.
func LoadDraft(r RoundRecord) *Draft {
	r = r.Clone()
	r.Normalize()
	return &Draft{
		ID: r.ID,
		Course: CourseInput{
			Name:         r.CourseName,
			Area:         r.Area,
			HoleCount:    r.HoleCount,
			CourseRating: r.CourseRating,
			Slope:        r.Slope,
			Tees:         r.Tees,
		}.withDefaults(),
		Holes:   r.Holes,
		Scores:  r.Scores,
		Players: r.Players,
	}
}

// SetHoleCount regenerates a fresh hole set and resizes every sheet.
func (d *Draft) SetHoleCount(holeCount int) error {
	if !ValidHoleCount(holeCount) {
		return fmt.Errorf("%w, got %d", ErrInvalidHoleCount, holeCount)
	}
	d.Course.HoleCount = holeCount
	d.Holes = NewHoleSet(holeCount)
	if d.Scores == nil {
		d.Scores = ScoreSheet{}
	}
	d.Scores.Resize(holeCount)
	return nil
}

// Generate selects the players of the round and gives each one a sheet.
// Sheets of players that stay selected keep their strokes.
func (d *Draft) Generate(players []string) error {
	selected := make([]string, 0, len(players))
	for _, name := range players {
		if name == "" || slices.Contains(selected, name) {
			continue
		}
		selected = append(selected, name)
	}
	if len(selected) == 0 {
		return ErrNoPlayers
	}
	d.Players = selected
	if d.Scores == nil {
		d.Scores = ScoreSheet{}
	}
	for _, name := range selected {
		d.Scores.EnsurePlayer(name, d.Course.HoleCount)
	}
	return nil
}

func (d *Draft) SetPar(hole, value int) error {
	return d.Holes.SetPar(hole, value)
}

func (d *Draft) SetStrokeIndex(hole, value int) error {
	return d.Holes.SetStrokeIndex(hole, value)
}

func (d *Draft) SetStroke(player string, hole, value int) error {
	return d.Scores.SetStroke(player, hole, value)
}

// Reset zeroes the strokes of every selected player.
func (d *Draft) Reset() {
	for _, name := range d.Players {
		d.Scores.Reset(name)
	}
}

// Summary is the quick information line shown above a scorecard.
type Summary struct {
	Players  int `json:"players"`
	Holes    int `json:"holes"`
	TotalPar int `json:"totalPar"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d players • %d holes • Par %d", s.Players, s.Holes, s.TotalPar)
}

func (d *Draft) Summary() Summary {
	return Summary{
		Players:  len(d.Players),
		Holes:    d.Course.HoleCount,
		TotalPar: d.Holes.TotalPar(),
	}
}

// Finalize turns the draft into a record with differentials computed from the
// strokes present now. Only the selected players are kept.
func (d *Draft) Finalize(id int64, now time.Time) (RoundRecord, error) {
	if len(d.Players) == 0 {
		return RoundRecord{}, ErrNoPlayers
	}
	if err := d.Course.Validate(); err != nil {
		return RoundRecord{}, err
	}

	scores := make(ScoreSheet, len(d.Players))
	for _, name := range d.Players {
		if strokes, ok := d.Scores[name]; ok {
			scores[name] = slices.Clone(strokes)
		}
	}

	course := d.Course.withDefaults()
	record := RoundRecord{
		ID:           id,
		Timestamp:    now.UTC(),
		CourseName:   course.Name,
		Area:         course.Area,
		HoleCount:    course.HoleCount,
		CourseRating: course.CourseRating,
		Slope:        course.Slope,
		Tees:         course.Tees,
		Players:      slices.Clone(d.Players),
		Holes:        d.Holes.Clone(),
		Scores:       scores,
	}
	record.Normalize()
	if err := record.Validate(); err != nil {
		return RoundRecord{}, err
	}
	record.ComputeDifferentials()
	return record, nil
}
