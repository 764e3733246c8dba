// Package mock provides a scripted wrike.Transport for tests.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// Call is one request received by a Transport.
type Call struct {
	Method string
	Path   string
	Params map[string]string
	Body   any
}

// Transport is an in-memory wrike.Transport. Responses are registered per
// path; every request is recorded so tests can assert on call counts and
// parameters.
type Transport struct {
	mu        sync.Mutex
	responses map[string]*wrike.Response
	errors    map[string]error
	calls     []Call
}

var _ wrike.Transport = (*Transport)(nil)

// NewTransport creates a mock transport with no registered responses.
func NewTransport() *Transport {
	return &Transport{
		responses: make(map[string]*wrike.Response),
		errors:    make(map[string]error),
	}
}

// WithData registers a {"data": records} response for path.
func (t *Transport) WithData(path string, records ...wrike.Record) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()

	if records == nil {
		records = []wrike.Record{}
	}
	t.responses[path] = &wrike.Response{Data: records}
	delete(t.errors, path)
	return t
}

// WithError makes requests for path fail with err.
func (t *Transport) WithError(path string, err error) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.errors[path] = err
	return t
}

// Get implements wrike.Transport.
func (t *Transport) Get(ctx context.Context, path string, params map[string]string) (*wrike.Response, error) {
	return t.handle(ctx, Call{Method: "GET", Path: path, Params: params})
}

// Post implements wrike.Transport.
func (t *Transport) Post(ctx context.Context, path string, body any) (*wrike.Response, error) {
	return t.handle(ctx, Call{Method: "POST", Path: path, Body: body})
}

func (t *Transport) handle(ctx context.Context, call Call) (*wrike.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, call)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := t.errors[call.Path]; ok {
		return nil, err
	}
	if resp, ok := t.responses[call.Path]; ok {
		return resp, nil
	}
	return nil, &wrike.TransportError{
		Method:     call.Method,
		Path:       call.Path,
		StatusCode: 404,
		Body:       fmt.Sprintf(`{"errorDescription":"mock: no response for %s"}`, call.Path),
	}
}

// Calls returns every request received so far.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// CallCount returns how many requests were made for path.
func (t *Transport) CallCount(path string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, c := range t.calls {
		if c.Path == path {
			n++
		}
	}
	return n
}

// LastCall returns the most recent request, if any.
func (t *Transport) LastCall() (Call, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.calls) == 0 {
		return Call{}, false
	}
	return t.calls[len(t.calls)-1], true
}
