package http

import (
	"context"
	"net/http"
	"time"

	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Service generates reports.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/vsometrics/internal/api/http Service
type Service interface {
	Reports(ctx context.Context) (*app.Reports, error)
}

// NewMux creates router for app's http server.
// gatherer is optional, /metrics endpoint is registered only when set.
func NewMux(service Service, timeout time.Duration, gatherer prometheus.Gatherer, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return loggingMiddleware(timeoutMiddleware(h))
	}

	m := http.NewServeMux()
	m.HandleFunc("/reports/builds", wrap(NewBuildsHandler(service, l)))
	m.HandleFunc("/reports/commits", wrap(NewCommitsHandler(service, l)))
	m.HandleFunc("/reports/summary", wrap(NewSummaryHandler(service, l)))
	if gatherer != nil {
		m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return m
}
