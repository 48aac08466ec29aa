package geminiapi

import (
	"context"

	"github.com/pkg/errors"
)

// GetBookRequest queries the current order book of a symbol.
// API: GET /v1/book/:symbol
type GetBookRequest struct {
	client *RestClient

	symbol string
}

func (c *RestClient) NewGetBookRequest() *GetBookRequest {
	return &GetBookRequest{client: c}
}

func (r *GetBookRequest) Symbol(symbol string) *GetBookRequest {
	r.symbol = symbol
	return r
}

func (r *GetBookRequest) Method() (string, error) {
	if len(r.symbol) == 0 {
		return "", errors.New("symbol is required for GetBookRequest")
	}

	if err := validateSymbol(r.symbol); err != nil {
		return "", err
	}

	return "book/" + r.symbol, nil
}

func (r *GetBookRequest) Do(ctx context.Context) (*OrderBook, error) {
	method, err := r.Method()
	if err != nil {
		return nil, err
	}

	var book OrderBook
	if err := r.client.Query(ctx, method, nil, &book); err != nil {
		return nil, err
	}

	return &book, nil
}
