package roundhandlers

import (
	"context"
	"io"

	roundservice "github.com/Black-And-White-Club/golf-tracker/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
)

// FakeRoundService is a programmable roundservice.Service. Unset funcs
// return zero values.
type FakeRoundService struct {
	SaveDraftFunc         func(ctx context.Context, d *rounddomain.Draft) (rounddomain.RoundRecord, error)
	DeleteRoundFunc       func(ctx context.Context, id int64) (bool, error)
	GetRoundFunc          func(ctx context.Context, id int64) (rounddomain.RoundRecord, error)
	HistoryFunc           func(ctx context.Context, q roundservice.HistoryQuery) ([]roundservice.HistoryEntry, error)
	CoursesFunc           func(ctx context.Context) ([]string, error)
	ScorecardFunc         func(ctx context.Context, id int64) (roundservice.Scorecard, error)
	PreviewScorecardFunc  func(ctx context.Context, d *rounddomain.Draft) (roundservice.Scorecard, error)
	HistoryChartFunc      func(ctx context.Context, q roundservice.HistoryQuery) ([]byte, error)
	DifferentialChartFunc func(ctx context.Context, player string) ([]byte, error)
	ExportXLSXFunc        func(ctx context.Context, id int64) ([]byte, error)
	ImportXLSXFunc        func(ctx context.Context, r io.Reader) (rounddomain.RoundRecord, error)
}

func (f *FakeRoundService) SaveDraft(ctx context.Context, d *rounddomain.Draft) (rounddomain.RoundRecord, error) {
	if f.SaveDraftFunc != nil {
		return f.SaveDraftFunc(ctx, d)
	}
	return rounddomain.RoundRecord{}, nil
}

func (f *FakeRoundService) DeleteRound(ctx context.Context, id int64) (bool, error) {
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, id)
	}
	return false, nil
}

func (f *FakeRoundService) GetRound(ctx context.Context, id int64) (rounddomain.RoundRecord, error) {
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, id)
	}
	return rounddomain.RoundRecord{}, nil
}

func (f *FakeRoundService) History(ctx context.Context, q roundservice.HistoryQuery) ([]roundservice.HistoryEntry, error) {
	if f.HistoryFunc != nil {
		return f.HistoryFunc(ctx, q)
	}
	return []roundservice.HistoryEntry{}, nil
}

func (f *FakeRoundService) Courses(ctx context.Context) ([]string, error) {
	if f.CoursesFunc != nil {
		return f.CoursesFunc(ctx)
	}
	return []string{}, nil
}

func (f *FakeRoundService) Scorecard(ctx context.Context, id int64) (roundservice.Scorecard, error) {
	if f.ScorecardFunc != nil {
		return f.ScorecardFunc(ctx, id)
	}
	return roundservice.Scorecard{}, nil
}

func (f *FakeRoundService) PreviewScorecard(ctx context.Context, d *rounddomain.Draft) (roundservice.Scorecard, error) {
	if f.PreviewScorecardFunc != nil {
		return f.PreviewScorecardFunc(ctx, d)
	}
	return roundservice.Scorecard{}, nil
}

func (f *FakeRoundService) HistoryChart(ctx context.Context, q roundservice.HistoryQuery) ([]byte, error) {
	if f.HistoryChartFunc != nil {
		return f.HistoryChartFunc(ctx, q)
	}
	return nil, nil
}

func (f *FakeRoundService) DifferentialChart(ctx context.Context, player string) ([]byte, error) {
	if f.DifferentialChartFunc != nil {
		return f.DifferentialChartFunc(ctx, player)
	}
	return nil, nil
}

func (f *FakeRoundService) ExportXLSX(ctx context.Context, id int64) ([]byte, error) {
	if f.ExportXLSXFunc != nil {
		return f.ExportXLSXFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeRoundService) ImportXLSX(ctx context.Context, r io.Reader) (rounddomain.RoundRecord, error) {
	if f.ImportXLSXFunc != nil {
		return f.ImportXLSXFunc(ctx, r)
	}
	return rounddomain.RoundRecord{}, nil
}

var _ roundservice.Service = (*FakeRoundService)(nil)
