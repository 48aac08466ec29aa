package geminiapi

import (
	"context"

	"github.com/pkg/errors"
)

// GetTradesRequest queries the recent public trades of a symbol.
// API: GET /v1/trades/:symbol
type GetTradesRequest struct {
	client *RestClient

	symbol string
}

func (c *RestClient) NewGetTradesRequest() *GetTradesRequest {
	return &GetTradesRequest{client: c}
}

func (r *GetTradesRequest) Symbol(symbol string) *GetTradesRequest {
	r.symbol = symbol
	return r
}

func (r *GetTradesRequest) Method() (string, error) {
	if len(r.symbol) == 0 {
		return "", errors.New("symbol is required for GetTradesRequest")
	}

	if err := validateSymbol(r.symbol); err != nil {
		return "", err
	}

	return "trades/" + r.symbol, nil
}

func (r *GetTradesRequest) Do(ctx context.Context) ([]Trade, error) {
	method, err := r.Method()
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := r.client.Query(ctx, method, nil, &trades); err != nil {
		return nil, err
	}

	return trades, nil
}
