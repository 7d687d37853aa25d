package limiter

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit and maximum number of requests in flight.
type limitedHTTPDoer struct {
	doer     HTTPDoer
	limiter  *rate.Limiter
	inFlight *semaphore.Weighted
}

// NewHTTPDoer creates limited HTTPDoer instance.
// maxRate - maximum number of Dos per second, zero or less disables rate limiting.
// maxInFlight - maximum number of requests whose response bodies are not closed yet.
func NewHTTPDoer(doer HTTPDoer, maxRate float64, maxInFlight int64) HTTPDoer {
	limit := rate.Inf
	if maxRate > 0 {
		limit = rate.Limit(maxRate)
	}
	if maxInFlight < 1 {
		maxInFlight = 1
	}

	return &limitedHTTPDoer{
		doer:     doer,
		limiter:  rate.NewLimiter(limit, 1),
		inFlight: semaphore.NewWeighted(maxInFlight),
	}
}

// Do executes http request. If limits are exceeded, blocks until request can be made.
// The in flight slot is released when response body is closed.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	if err := d.inFlight.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for in flight requests limiter: %w", err)
	}
	if err := d.limiter.Wait(ctx); err != nil {
		d.inFlight.Release(1)
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	resp, err := d.doer.Do(r)
	if err != nil {
		d.inFlight.Release(1)
		return nil, err
	}
	resp.Body = &releasingBody{
		ReadCloser: resp.Body,
		release: func() {
			d.inFlight.Release(1)
		},
	}

	return resp, nil
}

type releasingBody struct {
	io.ReadCloser
	once    sync.Once
	release func()
}

func (b *releasingBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(b.release)
	return err
}
