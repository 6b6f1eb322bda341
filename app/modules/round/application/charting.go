package roundservice

import (
	"bytes"
	"context"
	"time"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
	rounddb "github.com/Black-And-White-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors of rendered charts.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	TextColor   drawing.Color
}

var DefaultPalette = ChartPalette{
	Background:  drawing.ColorWhite,
	PrimaryLine: drawing.Color{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
	AccentLine:  drawing.Color{R: 0xf9, G: 0xa8, B: 0x25, A: 0xff},
	TextColor:   drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
}

// HistoryChart renders the average gross per round over time for the
// rounds matching q.
func (s *RoundService) HistoryChart(ctx context.Context, q HistoryQuery) ([]byte, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "HistoryChart", q.Player, func(ctx context.Context) ([]byte, error) {
		rounds, err := s.historyRounds(q)
		if err != nil {
			return nil, err
		}
		xs := make([]time.Time, 0, len(rounds))
		ys := make([]float64, 0, len(rounds))
		// History is newest first; the chart reads left to right.
		for i := len(rounds) - 1; i >= 0; i-- {
			r := rounds[i]
			total, played := 0, 0
			for _, name := range r.Players {
				if g := r.Gross(name); g > 0 {
					total += g
					played++
				}
			}
			if played == 0 {
				continue
			}
			xs = append(xs, r.Timestamp)
			ys = append(ys, float64(total)/float64(played))
		}
		return renderTimeSeries(s.palette, "Average gross", "Gross", xs, ys, nil)
	})
}

// DifferentialChart renders a player's score differentials over time, with
// the index derived from the rounds up to each point.
func (s *RoundService) DifferentialChart(ctx context.Context, player string) ([]byte, error) {
	return observability.WithTelemetry(ctx, s.telemetry, "DifferentialChart", player, func(ctx context.Context) ([]byte, error) {
		snap := s.store.Snapshot()
		rounds := snap.Rounds.History(rounddb.ForPlayer(player))
		xs := make([]time.Time, 0, len(rounds))
		diffs := make([]float64, 0, len(rounds))
		for i := len(rounds) - 1; i >= 0; i-- {
			d, ok := rounds[i].Differentials[player]
			if !ok {
				continue
			}
			xs = append(xs, rounds[i].Timestamp)
			diffs = append(diffs, d)
		}
		index := make([]float64, len(diffs))
		for i := range diffs {
			index[i] = handicapdomain.DerivedHandicapIndex(handicapdomain.RecentDifferentials(diffs[:i+1])).Value
		}
		return renderTimeSeries(s.palette, "Differential", "Differential", xs, diffs, index)
	})
}

func renderTimeSeries(palette ChartPalette, name, yName string, xs []time.Time, ys, trend []float64) ([]byte, error) {
	if !plottable(xs) {
		return renderNoDataPlaceholder(palette, "Not enough rounds to chart")
	}

	series := []chart.Series{chart.TimeSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: palette.PrimaryLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    palette.PrimaryLine,
		},
	}}
	if trend != nil {
		series = append(series, chart.TimeSeries{
			Name:    "Derived index",
			XValues: xs,
			YValues: trend,
			Style: chart.Style{
				StrokeColor:     palette.AccentLine,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 3},
			},
		})
	}

	graph := chart.Chart{
		Width:      800,
		Height:     400,
		Background: chart.Style{FillColor: palette.Background},
		Canvas:     chart.Style{FillColor: palette.Background},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style:          chart.Style{FontColor: palette.TextColor},
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Style: chart.Style{FontColor: palette.TextColor},
			Range: paddedRange(ys, trend),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// plottable reports whether the x axis has a non-zero span.
func plottable(xs []time.Time) bool {
	for _, x := range xs[min(1, len(xs)):] {
		if !x.Equal(xs[0]) {
			return true
		}
	}
	return false
}

// paddedRange keeps the y axis from collapsing when every value is equal.
func paddedRange(values ...[]float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	first := true
	for _, vs := range values {
		for _, v := range vs {
			if first {
				lo, hi, first = v, v, false
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

// renderNoDataPlaceholder draws msg on a blank canvas. A chart needs at
// least one series, so this goes through the renderer directly.
func renderNoDataPlaceholder(palette ChartPalette, msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
