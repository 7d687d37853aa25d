package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/vsometrics/internal/api/http/mock"
	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var testReports = &app.Reports{
	Builds: []app.BuildReportRow{
		{Project: "Alpha", BuildCount: 5},
	},
	Commits: []app.CommitReportRow{
		{Project: "Alpha", Member: "Anna", Email: "anna@example.com", Commits: 3},
		{Project: "Alpha", Member: "Bob", Email: "bob@example.com", Commits: 0},
	},
}

func TestReportHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		newHandler      func(Service, logrus.FieldLogger) http.HandlerFunc
		method          string
		url             string
		reports         *app.Reports
		serviceErr      error
		skipService     bool
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name:            "builds json",
			newHandler:      NewBuildsHandler,
			url:             "testurl",
			reports:         testReports,
			wantStatus:      http.StatusOK,
			wantBody:        `{"builds":[{"project":"Alpha","buildCount":5}]}`,
			wantContentType: jsonContentType,
		},
		{
			name:            "builds csv",
			newHandler:      NewBuildsHandler,
			url:             "testurl?format=csv",
			reports:         testReports,
			wantStatus:      http.StatusOK,
			wantBody:        "Project,BuildCount\nAlpha,5",
			wantContentType: csvContentType,
		},
		{
			name:            "commits json",
			newHandler:      NewCommitsHandler,
			url:             "testurl",
			reports:         testReports,
			wantStatus:      http.StatusOK,
			wantBody:        `{"commits":[{"project":"Alpha","member":"Anna","email":"anna@example.com","commits":3},{"project":"Alpha","member":"Bob","email":"bob@example.com","commits":0}]}`,
			wantContentType: jsonContentType,
		},
		{
			name:            "commits csv",
			newHandler:      NewCommitsHandler,
			url:             "testurl?format=csv",
			reports:         testReports,
			wantStatus:      http.StatusOK,
			wantBody:        "Project,Member,Email,Commits\nAlpha,Anna,anna@example.com,3\nAlpha,Bob,bob@example.com,0",
			wantContentType: csvContentType,
		},
		{
			name:            "summary",
			newHandler:      NewSummaryHandler,
			url:             "testurl",
			reports:         testReports,
			wantStatus:      http.StatusOK,
			wantBody:        `{"projects":[{"project":"Alpha","members":2,"totalCommits":3,"meanCommits":1.5,"medianCommits":1.5}]}`,
			wantContentType: jsonContentType,
		},
		{
			name:            "upstream api error",
			newHandler:      NewCommitsHandler,
			url:             "testurl",
			serviceErr:      &app.TransportError{Path: "_apis/projects", StatusCode: http.StatusUnauthorized},
			wantStatus:      http.StatusBadGateway,
			wantBody:        "upstream api error",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name:            "malformed upstream response",
			newHandler:      NewBuildsHandler,
			url:             "testurl",
			serviceErr:      &app.MalformedResponseError{Path: "_apis/projects", Field: "value"},
			wantStatus:      http.StatusBadGateway,
			wantBody:        "upstream api error",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name:            "service error",
			newHandler:      NewSummaryHandler,
			url:             "testurl",
			serviceErr:      errors.New("error"),
			wantStatus:      http.StatusInternalServerError,
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name:            "method not allowed",
			newHandler:      NewBuildsHandler,
			method:          http.MethodPost,
			url:             "testurl",
			skipService:     true,
			wantStatus:      http.StatusMethodNotAllowed,
			wantContentType: "text/plain; charset=utf-8",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if !tt.skipService {
				s.EXPECT().Reports(gomock.Any()).Return(tt.reports, tt.serviceErr)
			}

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, _ := http.NewRequest(method, tt.url, nil)
			w := httptest.NewRecorder()

			tt.newHandler(s, logrus.New())(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))

			body := strings.Trim(w.Body.String(), "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
