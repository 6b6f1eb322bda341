package roundhandlers

import "net/http"

// Handlers serves the round endpoints.
type Handlers interface {
	SaveDraft(w http.ResponseWriter, r *http.Request)
	PreviewScorecard(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	HistoryChart(w http.ResponseWriter, r *http.Request)
	GetRound(w http.ResponseWriter, r *http.Request)
	DeleteRound(w http.ResponseWriter, r *http.Request)
	Scorecard(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ImportXLSX(w http.ResponseWriter, r *http.Request)
	Courses(w http.ResponseWriter, r *http.Request)
	PlayerChart(w http.ResponseWriter, r *http.Request)
}
