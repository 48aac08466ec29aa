package geminiapi

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/c9s/gemini/pkg/nonce"
)

const (
	ProductionAPIURL = "https://api.gemini.com"
	SandboxAPIURL    = "https://api.sandbox.gemini.com"

	// APIVersionPrefix is prepended to every method to build the request path.
	APIVersionPrefix = "/v1/"

	UserAgent = "gemini-go/1.0"

	defaultHTTPTimeout = time.Second * 15
)

const (
	HeaderAPIKey    = "X-GEMINI-APIKEY"
	HeaderPayload   = "X-GEMINI-PAYLOAD"
	HeaderSignature = "X-GEMINI-SIGNATURE"
)

var log = logrus.WithField("exchange", "gemini")

var (
	ErrEmptyAPIKey    = errors.New("gemini: empty api key")
	ErrEmptyAPISecret = errors.New("gemini: empty api secret")
)

// NonceGenerator issues the nonce injected into every private payload.
type NonceGenerator interface {
	GetInt64() int64
}

var _ requestgen.AuthenticatedAPIClient = &RestClient{}

// RestClient is the request dispatcher of the Gemini v1 REST API.
// Public methods are sent as plain GET requests, private methods as signed
// POST requests carrying the payload in the X-GEMINI-* headers.
type RestClient struct {
	requestgen.BaseAPIClient

	apiKey    string
	apiSecret string

	nonce NonceGenerator

	timeout    time.Duration
	hasTimeout bool
}

type Option func(c *RestClient)

// WithBaseURL overrides the production endpoint, e.g. with SandboxAPIURL.
func WithBaseURL(baseURL string) Option {
	return func(c *RestClient) {
		u, err := url.Parse(baseURL)
		if err != nil {
			panic(err)
		}

		c.BaseURL = u
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *RestClient) {
		c.HttpClient = httpClient
	}
}

// WithTimeout sets the timeout of the underlying http client.
// It is applied to a copy of the client, so a shared client like
// http.DefaultClient is never modified. A zero duration disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *RestClient) {
		c.timeout = timeout
		c.hasTimeout = true
	}
}

func WithNonce(generator NonceGenerator) Option {
	return func(c *RestClient) {
		c.nonce = generator
	}
}

func NewClient(options ...Option) *RestClient {
	u, err := url.Parse(ProductionAPIURL)
	if err != nil {
		panic(err)
	}

	client := &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		nonce: nonce.NewMillisecondNonce(time.Now()),
	}

	for _, option := range options {
		option(client)
	}

	if client.HttpClient == nil {
		client.HttpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	if client.hasTimeout {
		httpClient := *client.HttpClient
		httpClient.Timeout = client.timeout
		client.HttpClient = &httpClient
	}

	return client
}

// Auth sets the api key and secret used for signing private requests.
func (c *RestClient) Auth(key, secret string) *RestClient {
	c.apiKey = key
	// pragma: allowlist nextline secret
	c.apiSecret = secret
	return c
}

// Dispatch sends the given method to the API and returns the parsed JSON response.
// The method is a slash-delimited path like "symbols" or "order/new".
// The payload is only used for private methods.
func (c *RestClient) Dispatch(ctx context.Context, method string, payload Payload) (*fastjson.Value, error) {
	response, err := c.dispatch(ctx, method, payload)
	if err != nil {
		return nil, err
	}

	v, err := fastjson.ParseBytes(response.Body)
	if err != nil {
		return nil, &DecodeError{Method: method, Body: response.Body, Err: err}
	}

	return v, nil
}

// Query dispatches the method and decodes the JSON response into out.
func (c *RestClient) Query(ctx context.Context, method string, payload Payload, out interface{}) error {
	response, err := c.dispatch(ctx, method, payload)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(response.Body)) == 0 {
		return &DecodeError{Method: method, Body: response.Body, Err: errors.New("empty response body")}
	}

	if err := response.DecodeJSON(out); err != nil {
		return &DecodeError{Method: method, Body: response.Body, Err: err}
	}

	return nil
}

func (c *RestClient) dispatch(ctx context.Context, method string, payload Payload) (*requestgen.Response, error) {
	category, err := Classify(method)
	if err != nil {
		return nil, err
	}

	var req *http.Request
	switch category {
	case MethodCategoryPublic:
		req, err = c.NewRequest(ctx, http.MethodGet, apiPath(method), nil, nil)
	case MethodCategoryPrivate:
		req, err = c.NewAuthenticatedRequest(ctx, http.MethodPost, apiPath(method), nil, payload)
	}

	if err != nil {
		return nil, err
	}

	log.Debugf("dispatching %s method %s", category, method)
	return c.SendRequest(req)
}

// NewRequest creates an unauthenticated request. Relative url can be provided in refURL.
func (c *RestClient) NewRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	pathURL := c.BaseURL.ResolveReference(rel)

	var req *http.Request
	if body == nil {
		req, err = http.NewRequestWithContext(ctx, method, pathURL.String(), nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	}

	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}

// NewAuthenticatedRequest creates a signed request for the private routes.
// refURL is the full api path (e.g. /v1/order/new), it is also sent as the
// "request" field of the payload. The payload is never sent as the body.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	if len(c.apiKey) == 0 {
		return nil, ErrEmptyAPIKey
	}

	if len(c.apiSecret) == 0 {
		return nil, ErrEmptyAPISecret
	}

	p, err := toPayload(payload)
	if err != nil {
		return nil, err
	}

	n := c.nonce.GetInt64()
	encoded, err := p.withRequest(refURL, n).Encode()
	if err != nil {
		return nil, err
	}

	req, err := c.NewRequest(ctx, method, refURL, params, nil)
	if err != nil {
		return nil, err
	}

	log.Debugf("signing %s %s with nonce %d", method, refURL, n)

	req.ContentLength = 0
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Content-Length", "0")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderPayload, encoded)
	req.Header.Set(HeaderSignature, Sign(encoded, c.apiSecret))
	return req, nil
}

// SendRequest sends the request to the API server and converts the failures
// into TransportError or HTTPStatusError. Any status outside 2xx is an HTTPStatusError.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	start := time.Now()

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		recordRequestMetrics(req, start, 0)
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	response, err := requestgen.NewResponse(resp)
	recordRequestMetrics(req, start, resp.StatusCode)
	if err != nil {
		return response, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	log.Debugf("%s %s -> %d (%s)", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, newHTTPStatusError(req, response)
	}

	return response, nil
}
