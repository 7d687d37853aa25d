package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/m-zajac/vsometrics/internal/report"
	"github.com/sirupsen/logrus"
)

const (
	jsonContentType = "application/json; charset=utf-8"
	csvContentType  = "text/csv; charset=utf-8"
)

type buildsResponse struct {
	Builds []app.BuildReportRow `json:"builds"`
}

type commitsResponse struct {
	Commits []app.CommitReportRow `json:"commits"`
}

type summaryResponse struct {
	Projects []report.ProjectSummary `json:"projects"`
}

// NewBuildsHandler creates handlerfunc returning build report.
// Responds with csv when `format=csv` query param is set.
func NewBuildsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, ok := runReports(w, r, service, l)
		if !ok {
			return
		}

		if isCSVRequested(r) {
			w.Header().Set("Content-type", csvContentType)
			if err := report.WriteBuildsCSV(w, reports.Builds); err != nil {
				l.Errorf("writing builds csv: %v", err)
			}
			return
		}
		writeJSON(w, buildsResponse{Builds: reports.Builds})
	}
}

// NewCommitsHandler creates handlerfunc returning member commits report.
// Responds with csv when `format=csv` query param is set.
func NewCommitsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, ok := runReports(w, r, service, l)
		if !ok {
			return
		}

		if isCSVRequested(r) {
			w.Header().Set("Content-type", csvContentType)
			if err := report.WriteCommitsCSV(w, reports.Commits); err != nil {
				l.Errorf("writing commits csv: %v", err)
			}
			return
		}
		writeJSON(w, commitsResponse{Commits: reports.Commits})
	}
}

// NewSummaryHandler creates handlerfunc returning per project commit summary.
func NewSummaryHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, ok := runReports(w, r, service, l)
		if !ok {
			return
		}

		summaries, err := report.Summarize(reports.Commits)
		if err != nil {
			l.Errorf("summarizing reports: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}
		writeJSON(w, summaryResponse{Projects: summaries})
	}
}

// runReports runs service and writes error response on failure.
func runReports(w http.ResponseWriter, r *http.Request, service Service, l logrus.FieldLogger) (*app.Reports, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return nil, false
	}

	reports, err := service.Reports(r.Context())
	if err != nil {
		l.Errorf("generating reports: %v", err)
		if app.IsTransportError(err) || app.IsMalformedResponseError(err) {
			http.Error(w, "upstream api error", http.StatusBadGateway)
			return nil, false
		}

		http.Error(w, "", http.StatusInternalServerError)
		return nil, false
	}

	return reports, true
}

func isCSVRequested(r *http.Request) bool {
	return r.URL.Query().Get("format") == "csv"
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", jsonContentType)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}
