package geminiapi

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/c9s/requestgen"
	"github.com/valyala/fastjson"
)

var htmlTagPattern = regexp.MustCompile("<[/]?[a-zA-Z-]+.*?>")

// UnknownMethodError is returned when the first segment of a method is
// neither a public nor a private method. No request is sent.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("gemini: unknown api method %q", e.Method)
}

// TransportError is a failure below the HTTP layer: connection, TLS, timeout
// or context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Cause() error { return e.Err }

// HTTPStatusError is returned for non-2xx responses.
// Reason and Message are filled when the body is a Gemini error object:
//
//	{"result": "error", "reason": "InvalidNonce", "message": "Nonce '1' has not increased since your last call"}
type HTTPStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte

	Reason  string
	Message string
}

func (e *HTTPStatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("gemini: %s %s: %d %s: %s", e.Method, e.URL, e.StatusCode, e.Reason, e.Message)
	}

	return fmt.Sprintf("gemini: %s %s: %d %s", e.Method, e.URL, e.StatusCode, strings.TrimSpace(e.Message))
}

func newHTTPStatusError(req *http.Request, response *requestgen.Response) *HTTPStatusError {
	e := &HTTPStatusError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: response.StatusCode,
		Body:       response.Body,
	}

	if v, err := fastjson.ParseBytes(response.Body); err == nil {
		if string(v.GetStringBytes("result")) == "error" {
			e.Reason = string(v.GetStringBytes("reason"))
			e.Message = string(v.GetStringBytes("message"))
			return e
		}
	}

	// 5xx pages from the edge are html
	e.Message = htmlTagPattern.ReplaceAllLiteralString(string(response.Body), "")
	return e
}

// DecodeError is returned when the response body can not be decoded.
type DecodeError struct {
	Method string
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gemini: unable to decode %s response: %v, body: %q", e.Method, e.Err, truncate(e.Body, 256))
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Cause() error { return e.Err }

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
