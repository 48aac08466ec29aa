package geminiapi

import "context"

// HeartbeatRequest keeps the session alive for keys with the heartbeat requirement enabled,
// otherwise Gemini cancels the session orders after 30 seconds without a request.
// API: POST /v1/heartbeat
type HeartbeatRequest struct {
	client *RestClient
}

func (c *RestClient) NewHeartbeatRequest() *HeartbeatRequest {
	return &HeartbeatRequest{client: c}
}

func (r *HeartbeatRequest) Method() string {
	return "heartbeat"
}

func (r *HeartbeatRequest) Do(ctx context.Context) (*HeartbeatResponse, error) {
	var resp HeartbeatResponse
	if err := r.client.Query(ctx, r.Method(), nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
