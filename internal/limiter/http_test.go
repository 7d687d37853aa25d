package limiter

import (
	"context"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-zajac/vsometrics/internal/mock"
	"github.com/stretchr/testify/assert"
)

func TestLimitedHTTPDoerRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, maxRate, 1)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	startTime := time.Now()
	var dos int
	for startTime.Add(testTime).After(time.Now()) {
		resp, err := limitedDoer.Do(req)
		if err != nil {
			t.Fatalf("Do() returned error: %v", err)
		}
		resp.Body.Close()
		dos++
	}

	expectedDos := float64(maxRate) * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(dos)-expectedDos) / expectedDos
	if diff > 0.1 {
		t.Errorf("unexpected number of Dos: %d, want %d", dos, int(expectedDos))
	}
}

func TestLimitedHTTPDoerTimeout(t *testing.T) {
	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, 1, 10)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := limitedDoer.Do(req)
	if err != nil {
		t.Fatalf("first Do() returned error: %v", err)
	}
	resp.Body.Close()

	// Error is expected because of short ctx timeout and low rate limit.
	_, err = limitedDoer.Do(req)
	if err == nil {
		t.Fatal("second Do() didn't return error")
	}
}

func TestLimitedHTTPDoerInFlight(t *testing.T) {
	var current, max int32
	release := make(chan struct{})
	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			n := atomic.AddInt32(&current, 1)
			for {
				m := atomic.LoadInt32(&max)
				if n <= m || atomic.CompareAndSwapInt32(&max, m, n) {
					break
				}
			}
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
		},
	}
	limitedDoer := NewHTTPDoer(doer, 0, 2)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
			resp, err := limitedDoer.Do(req)
			if !assert.NoError(t, err) {
				return
			}
			<-release
			atomic.AddInt32(&current, -1)
			resp.Body.Close()
		}()
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&current))
	close(release)
	wg.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&max))
	assert.Equal(t, 10, doer.Calls())
}
