package geminiapi

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const DefaultLimitTrades = 50

// GetMyTradesRequest queries the trade history of the account.
// API: POST /v1/mytrades
type GetMyTradesRequest struct {
	client *RestClient

	symbol      string
	timestamp   *time.Time
	limitTrades int
}

func (c *RestClient) NewGetMyTradesRequest() *GetMyTradesRequest {
	return &GetMyTradesRequest{client: c}
}

func (r *GetMyTradesRequest) Symbol(symbol string) *GetMyTradesRequest {
	r.symbol = symbol
	return r
}

// Timestamp only returns the trades on or after the given time.
func (r *GetMyTradesRequest) Timestamp(t time.Time) *GetMyTradesRequest {
	r.timestamp = &t
	return r
}

// LimitTrades is the maximum number of trades to return, DefaultLimitTrades is used when it's not positive.
func (r *GetMyTradesRequest) LimitTrades(limit int) *GetMyTradesRequest {
	r.limitTrades = limit
	return r
}

func (r *GetMyTradesRequest) Method() string {
	return "mytrades"
}

func (r *GetMyTradesRequest) GetParameters() (Payload, error) {
	if len(r.symbol) == 0 {
		return nil, errors.New("symbol is required for GetMyTradesRequest")
	}

	limit := r.limitTrades
	if limit <= 0 {
		limit = DefaultLimitTrades
	}

	params := Payload{
		"symbol":       r.symbol,
		"limit_trades": limit,
	}

	if r.timestamp != nil {
		params["timestamp"] = r.timestamp.Unix()
	}

	return params, nil
}

func (r *GetMyTradesRequest) Do(ctx context.Context) ([]MyTrade, error) {
	params, err := r.GetParameters()
	if err != nil {
		return nil, err
	}

	var trades []MyTrade
	if err := r.client.Query(ctx, r.Method(), params, &trades); err != nil {
		return nil, err
	}

	return trades, nil
}
