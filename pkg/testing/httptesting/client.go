package httptesting

import (
	"encoding/json"
	"net/http"
)

// EchoSave replies every request with the same content and keeps the last
// request in the caller's variable.
type EchoSave struct {
	saveTo  **http.Request
	status  int
	content string
	err     error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if st.err != nil {
		return nil, st.err
	}

	status := st.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := BuildResponseString(status, st.content)
	resp.Request = req
	SetHeader(resp, "Content-Type", "application/json")
	return resp, nil
}

func HttpClientWithContent(content string) *http.Client {
	transport := EchoSave{content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithStatus(status int, content string) *http.Client {
	transport := EchoSave{status: status, content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithError(err error) *http.Client {
	transport := EchoSave{err: err}
	return &http.Client{Transport: &transport}
}

func HttpClientWithJson(jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	transport := EchoSave{err: err, content: string(jsonBytes)}
	return &http.Client{Transport: &transport}
}

// "Saver" refers to saving the *http.Request in a local variable provided by the caller.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	transport := EchoSave{saveTo: saved, content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientSaverWithJson(saved **http.Request, jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	transport := EchoSave{saveTo: saved, err: err, content: string(jsonBytes)}
	return &http.Client{Transport: &transport}
}
