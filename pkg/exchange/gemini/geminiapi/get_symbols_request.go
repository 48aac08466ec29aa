package geminiapi

import "context"

// GetSymbolsRequest lists the symbols available for trading.
// API: GET /v1/symbols
type GetSymbolsRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetSymbolsRequest() *GetSymbolsRequest {
	return &GetSymbolsRequest{client: c}
}

func (r *GetSymbolsRequest) Method() string {
	return "symbols"
}

func (r *GetSymbolsRequest) Do(ctx context.Context) ([]string, error) {
	var symbols []string
	if err := r.client.Query(ctx, r.Method(), nil, &symbols); err != nil {
		return nil, err
	}

	return symbols, nil
}
