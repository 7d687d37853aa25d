package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// HTTPDoer mocks http.Client.
// Statuses, Bodies and Headers are used in round robin order. Safe for concurrent use.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header
	Err      error

	DoFunc    func(*http.Request) (*http.Response, error)
	Responses []*http.Response
	Requests  []*http.Request

	m sync.Mutex
	i int
}

// Do fakes executing http request.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	defer d.m.Unlock()
	defer func() {
		d.i++
	}()

	d.Requests = append(d.Requests, r)

	if d.DoFunc != nil {
		return d.DoFunc(r)
	}
	if d.Err != nil {
		return nil, d.Err
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[d.i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[d.i%len(d.Bodies)]
	}
	body := io.NopCloser(bytes.NewBuffer(data))

	header := http.Header{}
	if len(d.Headers) > 0 {
		header = d.Headers[d.i%len(d.Headers)]
	}

	response := &http.Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
		Request:    r,
	}
	d.Responses = append(d.Responses, response)

	return response, nil
}

// Calls returns number of Do calls.
func (d *HTTPDoer) Calls() int {
	d.m.Lock()
	defer d.m.Unlock()

	return d.i
}
