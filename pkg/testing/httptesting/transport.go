package httptesting

import (
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport routes requests to handlers registered by method and url path.
// Every handled request is kept so tests can inspect what was sent.
type MockTransport struct {
	mu       sync.Mutex
	handlers map[string]map[string]RoundTripFunc
	requests []*http.Request
}

func (transport *MockTransport) handle(method, path string, f RoundTripFunc) {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	if transport.handlers == nil {
		transport.handlers = make(map[string]map[string]RoundTripFunc)
	}

	if transport.handlers[method] == nil {
		transport.handlers[method] = make(map[string]RoundTripFunc)
	}

	transport.handlers[method][path] = f
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	transport.handle(http.MethodGet, path, f)
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	transport.handle(http.MethodPost, path, f)
}

// Requests returns the requests received so far, in order.
func (transport *MockTransport) Requests() []*http.Request {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	return append([]*http.Request(nil), transport.requests...)
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport.mu.Lock()
	transport.requests = append(transport.requests, req)
	f, ok := transport.handlers[strings.ToUpper(req.Method)][req.URL.Path]
	transport.mu.Unlock()

	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	resp, err := f(req)
	if resp != nil && resp.Request == nil {
		resp.Request = req
	}

	return resp, err
}

func MockWithJsonReply(url string, rawData interface{}) *http.Client {
	tripFunc := func(_ *http.Request) (*http.Response, error) {
		return BuildResponseJson(http.StatusOK, rawData), nil
	}

	transport := &MockTransport{}
	transport.GET(url, tripFunc)
	transport.POST(url, tripFunc)
	return &http.Client{Transport: transport}
}
