package roundservice

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
	"github.com/xuri/excelize/v2"
)

const scorecardSheet = "Scorecard"

// Metadata labels of the scorecard spreadsheet, one per row in column A.
const (
	labelCourse = "Course"
	labelArea   = "Area"
	labelDate   = "Date"
	labelRating = "Rating"
	labelSlope  = "Slope"
	labelTees   = "Tees"
	labelHole   = "Hole"
	labelPar    = "Par"
	labelSI     = "SI"
)

// scorecardSection is the part of the sheet the parser expects next.
type scorecardSection int

const (
	sectionMetadata scorecardSection = iota
	sectionPar
	sectionSI
	sectionPlayers
)

// ExportXLSX writes a saved round as a scorecard spreadsheet.
func (s *RoundService) ExportXLSX(ctx context.Context, id int64) ([]byte, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "ExportXLSX", strconv.FormatInt(id, 10), func(ctx context.Context) ([]byte, error) {
		r, err := s.store.Snapshot().Rounds.FindByID(id)
		if err != nil {
			return nil, err
		}
		return writeScorecardXLSX(r)
	})
}

func writeScorecardXLSX(r rounddomain.RoundRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scorecardSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]any{
		{labelCourse, r.CourseName},
		{labelArea, r.Area},
		{labelDate, r.Timestamp.UTC().Format(time.RFC3339)},
		{labelRating, r.CourseRating},
		{labelSlope, r.Slope},
		{labelTees, r.Tees},
		{},
	}

	header := []any{labelHole}
	pars := []any{labelPar}
	sis := []any{labelSI}
	for i, h := range r.Holes {
		header = append(header, i+1)
		pars = append(pars, h.Par)
		sis = append(sis, h.StrokeIndex)
	}
	header = append(header, "Out", "In", "Total")
	pars = append(pars, "", "", r.TotalPar())
	rows = append(rows, header, pars, sis)

	for _, name := range r.Players {
		row := []any{name}
		for _, v := range r.Scores[name] {
			row = append(row, v)
		}
		row = append(row, r.Scores.FrontNine(name), r.Scores.BackNine(name), r.Gross(name))
		rows = append(rows, row)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(scorecardSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportXLSX reads a scorecard spreadsheet in the ExportXLSX layout and saves
// it as a new round. Strokes are clamped like manual entry.
func (s *RoundService) ImportXLSX(ctx context.Context, r io.Reader) (rounddomain.RoundRecord, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "ImportXLSX", "", func(ctx context.Context) (rounddomain.RoundRecord, error) {
		record, err := parseScorecardXLSX(r, s.clock.Now())
		if err != nil {
			return rounddomain.RoundRecord{}, err
		}
		return s.store.PutRound(ctx, record)
	})
}

func parseScorecardXLSX(reader io.Reader, now time.Time) (rounddomain.RoundRecord, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return rounddomain.RoundRecord{}, fmt.Errorf("%w: %v", ErrInvalidScorecard, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return rounddomain.RoundRecord{}, fmt.Errorf("%w: no sheets", ErrInvalidScorecard)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return rounddomain.RoundRecord{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	record := rounddomain.RoundRecord{
		Timestamp:    now.UTC(),
		CourseRating: rounddomain.DefaultCourseRating,
		Slope:        rounddomain.DefaultSlope,
		Scores:       rounddomain.ScoreSheet{},
	}
	holeCount := 0
	// Par and SI are recognised only directly after the Hole row, in that
	// order, so a player may carry any of the header names.
	next := sectionMetadata

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		label := strings.TrimSpace(row[0])
		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}

		if next == sectionMetadata {
			switch {
			case strings.EqualFold(label, labelCourse):
				record.CourseName = value
			case strings.EqualFold(label, labelArea):
				record.Area = value
			case strings.EqualFold(label, labelTees):
				record.Tees = value
			case strings.EqualFold(label, labelDate):
				if t, err := time.Parse(time.RFC3339, value); err == nil {
					record.Timestamp = t.UTC()
				}
			case strings.EqualFold(label, labelRating):
				if v, err := strconv.ParseFloat(value, 64); err == nil {
					record.CourseRating = v
				}
			case strings.EqualFold(label, labelSlope):
				if v, err := strconv.Atoi(value); err == nil {
					record.Slope = v
				}
			case strings.EqualFold(label, labelHole):
				holeCount = countHoleColumns(row[1:])
				if holeCount == 0 {
					return rounddomain.RoundRecord{}, fmt.Errorf("%w: row %d has no hole numbers", ErrInvalidScorecard, i+1)
				}
				if !rounddomain.ValidHoleCount(holeCount) {
					return rounddomain.RoundRecord{}, fmt.Errorf("%w: row %d: %w, got %d", ErrInvalidScorecard, i+1, rounddomain.ErrInvalidHoleCount, holeCount)
				}
				record.HoleCount = holeCount
				record.Holes = rounddomain.NewHoleSet(holeCount)
				next = sectionPar
			}
			// Unknown metadata rows before the hole header are ignored.
			continue
		}

		if next == sectionPar {
			next = sectionSI
			if strings.EqualFold(label, labelPar) {
				for h, v := range intCells(row[1:], holeCount) {
					_ = record.Holes.SetPar(h, v)
				}
				continue
			}
		}
		if next == sectionSI {
			next = sectionPlayers
			if strings.EqualFold(label, labelSI) {
				for h, v := range intCells(row[1:], holeCount) {
					_ = record.Holes.SetStrokeIndex(h, v)
				}
				continue
			}
		}

		if record.HasPlayer(label) {
			return rounddomain.RoundRecord{}, fmt.Errorf("%w: player %q appears twice", ErrInvalidScorecard, label)
		}
		record.Players = append(record.Players, label)
		record.Scores.EnsurePlayer(label, holeCount)
		for h, v := range intCells(row[1:], holeCount) {
			_ = record.Scores.SetStroke(label, h, v)
		}
	}

	if holeCount == 0 {
		return rounddomain.RoundRecord{}, fmt.Errorf("%w: missing %q row", ErrInvalidScorecard, labelHole)
	}
	if len(record.Players) == 0 {
		return rounddomain.RoundRecord{}, fmt.Errorf("%w: %w", ErrInvalidScorecard, rounddomain.ErrNoPlayers)
	}
	return record, nil
}

// countHoleColumns counts the leading cells holding 1, 2, 3 and so on.
func countHoleColumns(cells []string) int {
	n := 0
	for _, c := range cells {
		v, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil || v != n+1 {
			break
		}
		n++
	}
	return n
}

// intCells returns the numeric values of the first n cells keyed by hole
// index. Blank or non-numeric cells are skipped.
func intCells(cells []string, n int) map[int]int {
	out := make(map[int]int, n)
	for i := 0; i < n && i < len(cells); i++ {
		v, err := strconv.Atoi(strings.TrimSpace(cells[i]))
		if err != nil {
			continue
		}
		out[i] = v
	}
	return out
}
