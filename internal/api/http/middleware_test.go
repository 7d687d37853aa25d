package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(time.Millisecond)
	h := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)

		select {
		case <-r.Context().Done():
		default:
			t.Error("request context not canceled")
		}
	}

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	m(h)(nil, r)
}

func TestNewLoggingMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	m := NewLoggingMiddleware(l)
	h := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}

	r, _ := http.NewRequest(http.MethodGet, "/reports/builds", nil)
	w := httptest.NewRecorder()
	m(h)(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), "path=/reports/builds")
	assert.Contains(t, buf.String(), "status=418")
}
