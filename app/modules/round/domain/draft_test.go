package rounddomain

import (
	"testing"
	"time"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(CourseInput{Name: "  Pine Hills "})
	assert.Equal(t, "Pine Hills", d.Course.Name)
	assert.Equal(t, DefaultHoleCount, d.Course.HoleCount)
	assert.Equal(t, DefaultCourseRating, d.Course.CourseRating)
	assert.Equal(t, DefaultSlope, d.Course.Slope)
	assert.Equal(t, DefaultTees, d.Course.Tees)
	assert.Len(t, d.Holes, DefaultHoleCount)
}

func TestGenerateRequiresPlayers(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine"})
	assert.ErrorIs(t, d.Generate(nil), ErrNoPlayers)
	assert.ErrorIs(t, d.Generate([]string{""}), ErrNoPlayers)

	require.NoError(t, d.Generate([]string{"Ann", "Bob", "Ann"}))
	assert.Equal(t, []string{"Ann", "Bob"}, d.Players)
	assert.Len(t, d.Scores["Bob"], 18)
}

func TestGenerateKeepsStrokesOfRemainingPlayers(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine", HoleCount: 9})
	require.NoError(t, d.Generate([]string{"Ann"}))
	require.NoError(t, d.SetStroke("Ann", 0, 5))

	require.NoError(t, d.Generate([]string{"Ann", "Bob"}))
	assert.Equal(t, 5, d.Scores["Ann"][0])
}

func TestSetHoleCountResizesSheets(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine"})
	require.NoError(t, d.Generate([]string{"Ann"}))
	require.NoError(t, d.SetPar(0, 4))
	require.NoError(t, d.SetStroke("Ann", 0, 6))

	require.NoError(t, d.SetHoleCount(9))
	assert.Len(t, d.Holes, 9)
	assert.Equal(t, 0, d.Holes[0].Par, "hole set is regenerated")
	assert.Equal(t, []int{6, 0, 0, 0, 0, 0, 0, 0, 0}, d.Scores["Ann"])
	assert.Equal(t, []string{"Ann"}, d.Players)

	assert.ErrorIs(t, d.SetHoleCount(0), ErrInvalidHoleCount)
}

func TestHoleCountBounds(t *testing.T) {
	tests := []struct {
		name      string
		holeCount int
		wantErr   bool
	}{
		{name: "default", holeCount: 0},
		{name: "nine", holeCount: 9},
		{name: "longest card", holeCount: MaxHoleCount},
		{name: "negative", holeCount: -9, wantErr: true},
		{name: "too many", holeCount: MaxHoleCount + 1, wantErr: true},
		{name: "absurd", holeCount: 1 << 62, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := CourseInput{Name: "Pine", HoleCount: tt.holeCount}
			err := course.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidHoleCount)

			d := NewDraft(course)
			assert.Empty(t, d.Holes)
			require.NoError(t, d.Generate([]string{"Ann"}))
			assert.Empty(t, d.Scores["Ann"])
			_, err = d.Finalize(1, time.Now())
			assert.ErrorIs(t, err, ErrInvalidHoleCount)

			valid := NewDraft(CourseInput{Name: "Pine", HoleCount: 9})
			assert.ErrorIs(t, valid.SetHoleCount(tt.holeCount), ErrInvalidHoleCount)
			assert.Len(t, valid.Holes, 9, "a rejected count leaves the draft alone")
		})
	}
}

func TestDraftReset(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine", HoleCount: 3})
	require.NoError(t, d.Generate([]string{"Ann"}))
	require.NoError(t, d.SetStroke("Ann", 1, 7))
	d.Reset()
	assert.Equal(t, []int{0, 0, 0}, d.Scores["Ann"])
}

func TestSummary(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine", HoleCount: 9})
	require.NoError(t, d.Generate([]string{"Ann", "Bob"}))
	for i := range d.Holes {
		require.NoError(t, d.SetPar(i, 4))
	}
	assert.Equal(t, "2 players • 9 holes • Par 36", d.Summary().String())
}

func TestFinalize(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine", Area: "North", HoleCount: 2, CourseRating: 10, Slope: 113})
	require.NoError(t, d.Generate([]string{"Ann", "Bob"}))
	require.NoError(t, d.SetStroke("Ann", 0, 6))
	require.NoError(t, d.SetStroke("Ann", 1, 6))
	require.NoError(t, d.Generate([]string{"Ann"}))

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	r, err := d.Finalize(42, now)
	require.NoError(t, err)

	assert.Equal(t, int64(42), r.ID)
	assert.Equal(t, time.UTC, r.Timestamp.Location())
	assert.Equal(t, "Pine", r.CourseName)
	assert.Equal(t, []string{"Ann"}, r.Players)
	assert.NotContains(t, r.Scores, "Bob", "deselected players are dropped")
	assert.InDelta(t, 2.0, r.Differentials["Ann"], 1e-9)

	r.Scores["Ann"][0] = 1
	assert.Equal(t, 6, d.Scores["Ann"][0], "record does not share the draft sheets")

	empty := NewDraft(CourseInput{Name: "Pine"})
	_, err = empty.Finalize(1, now)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestLoadDraftKeepsID(t *testing.T) {
	r := RoundRecord{
		ID:           7,
		CourseName:   "Pine",
		HoleCount:    2,
		CourseRating: 70,
		Slope:        120,
		Players:      []string{"Ann"},
		Scores:       ScoreSheet{"Ann": {3, 4}},
	}
	d := LoadDraft(r)
	assert.Equal(t, int64(7), d.ID)
	assert.Equal(t, 120, d.Course.Slope)
	assert.Len(t, d.Holes, 2)

	require.NoError(t, d.SetStroke("Ann", 0, 9))
	assert.Equal(t, 3, r.Scores["Ann"][0], "loading copies the record")
}

func TestBuildScorecard(t *testing.T) {
	d := NewDraft(CourseInput{Name: "Pine", HoleCount: 18, CourseRating: 72, Slope: 113})
	require.NoError(t, d.Generate([]string{"Ann", "Bob"}))
	for i := range d.Holes {
		require.NoError(t, d.SetPar(i, 4))
		require.NoError(t, d.SetStroke("Ann", i, 5))
	}

	indexes := map[string]handicapdomain.Index{"Ann": handicapdomain.IndexOf(10)}
	rows := BuildScorecard(CourseOfDraft(d), d.Players, d.Scores, func(name string) handicapdomain.Index {
		return indexes[name]
	})
	require.Len(t, rows, 2)

	ann := rows[0]
	assert.Equal(t, 45, ann.Out)
	assert.Equal(t, 45, ann.In)
	assert.Equal(t, 90, ann.Total)
	assert.Equal(t, 18, ann.ToPar)
	assert.Equal(t, handicapdomain.Some(10), ann.CourseHandicap)
	assert.Equal(t, handicapdomain.Some(80), ann.Net)

	bob := rows[1]
	assert.Equal(t, 0, bob.Total)
	assert.False(t, bob.CourseHandicap.Valid)
	assert.False(t, bob.Net.Valid)
	assert.Equal(t, handicapdomain.NoData, bob.Net.String())
}
