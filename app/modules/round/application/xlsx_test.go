package roundservice

import (
	"bytes"
	"context"
	"testing"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store, clock := newTestService(t)

	d := rounddomain.NewDraft(rounddomain.CourseInput{Name: "Pine", Area: "North", HoleCount: 9, CourseRating: 35.5, Slope: 120, Tees: "blue"})
	require.NoError(t, d.Generate([]string{"Ann", "Bob"}))
	for h := range d.Holes {
		require.NoError(t, d.SetPar(h, 3+h%3))
		require.NoError(t, d.SetStrokeIndex(h, h+1))
		require.NoError(t, d.SetStroke("Ann", h, 4))
		require.NoError(t, d.SetStroke("Bob", h, 5))
	}
	clock.t = time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	saved, err := svc.SaveDraft(ctx, d)
	require.NoError(t, err)

	data, err := svc.ExportXLSX(ctx, saved.ID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{scorecardSheet}, f.GetSheetList())
	course, err := f.GetCellValue(scorecardSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Pine", course)
	require.NoError(t, f.Close())

	imported, err := svc.ImportXLSX(ctx, bytes.NewReader(data))
	require.NoError(t, err)
	assert.NotEqual(t, saved.ID, imported.ID)
	assert.Equal(t, saved.CourseName, imported.CourseName)
	assert.Equal(t, saved.Area, imported.Area)
	assert.Equal(t, saved.Tees, imported.Tees)
	assert.Equal(t, saved.CourseRating, imported.CourseRating)
	assert.Equal(t, saved.Slope, imported.Slope)
	assert.True(t, saved.Timestamp.Equal(imported.Timestamp))
	assert.Equal(t, saved.Players, imported.Players)
	assert.Equal(t, saved.Holes, imported.Holes)
	assert.Equal(t, saved.Scores, imported.Scores)
	assert.Equal(t, saved.Differentials, imported.Differentials)
	assert.Equal(t, []string{"SaveDraft", "PutRound"}, store.Trace())
	assert.Equal(t, 2, store.Snapshot().Rounds.Len())
}

func TestXLSXRoundTripKeepsPlayersNamedLikeHeaders(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	players := []string{"Ann", "Par", "SI", "hole"}
	d := rounddomain.NewDraft(rounddomain.CourseInput{Name: "Pine", HoleCount: 9})
	require.NoError(t, d.Generate(players))
	for h := range d.Holes {
		require.NoError(t, d.SetPar(h, 4))
		for i, name := range players {
			require.NoError(t, d.SetStroke(name, h, 4+i))
		}
	}
	saved, err := svc.SaveDraft(ctx, d)
	require.NoError(t, err)

	data, err := svc.ExportXLSX(ctx, saved.ID)
	require.NoError(t, err)
	imported, err := svc.ImportXLSX(ctx, bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, players, imported.Players)
	assert.Equal(t, 9, imported.HoleCount)
	assert.Equal(t, 36, imported.TotalPar())
	assert.Equal(t, saved.Holes, imported.Holes)
	assert.Equal(t, saved.Scores, imported.Scores)
}

func TestImportXLSXRejectsNonScorecards(t *testing.T) {
	build := func(rows ...[]any) []byte {
		f := excelize.NewFile()
		defer f.Close()
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
		}
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		return buf.Bytes()
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"not a workbook", []byte("hello")},
		{"no hole row", build([]any{"Course", "Pine"}, []any{"Ann", 4, 5})},
		{"no players", build([]any{"Hole", 1, 2, 3}, []any{"Par", 3, 4, 5})},
		{"duplicate player", build([]any{"Hole", 1, 2}, []any{"Ann", 3, 4}, []any{"Ann", 4, 4})},
		{"too many holes", build(append([]any{"Hole"}, holeNumbers(rounddomain.MaxHoleCount+1)...), []any{"Ann", 4})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newTestService(t)
			_, err := svc.ImportXLSX(context.Background(), bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrInvalidScorecard)
			assert.Empty(t, store.Trace())
		})
	}
}

func TestImportXLSXClampsAndDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)
	data := func() []byte {
		f := excelize.NewFile()
		defer f.Close()
		rows := [][]any{
			{"Course", "Elm"},
			{"Hole", 1, 2, 3, "Out"},
			{"Par", 3, 99, 4},
			{"Cy", 2, 45, ""},
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
		}
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		return buf.Bytes()
	}()

	r, err := svc.ImportXLSX(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, r.HoleCount)
	assert.Equal(t, testNow, r.Timestamp)
	assert.Equal(t, float64(rounddomain.DefaultCourseRating), r.CourseRating)
	assert.Equal(t, rounddomain.DefaultSlope, r.Slope)
	assert.Equal(t, []int{3, rounddomain.MaxPar, 4}, r.Holes.Pars())
	assert.Equal(t, []int{2, rounddomain.MaxStrokes, 0}, r.Scores["Cy"])
}

func holeNumbers(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
