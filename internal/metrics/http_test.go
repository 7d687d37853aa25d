package metrics

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m-zajac/vsometrics/internal/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	_, err := NewCollector(nil)
	assert.Error(t, err)

	reg := prometheus.NewRegistry()
	_, err = NewCollector(reg)
	require.NoError(t, err)

	// Metrics can't be registered twice.
	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestCollectorHTTPDoer(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	doer := c.HTTPDoer(&mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusOK, http.StatusNotFound},
	})
	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	for i := 0; i < 3; i++ {
		_, err := doer.Do(req)
		require.NoError(t, err)
	}

	failingDoer := c.HTTPDoer(&mock.HTTPDoer{Err: errors.New("connection refused")})
	_, err = failingDoer.Do(req)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("error")))

	count, err := c.RequestCount()
	require.NoError(t, err)
	assert.Equal(t, 4.0, count)
}
