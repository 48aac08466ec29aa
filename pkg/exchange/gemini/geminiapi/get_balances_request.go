package geminiapi

import "context"

// GetBalancesRequest queries the available balances of the account.
// API: POST /v1/balances
type GetBalancesRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetBalancesRequest() *GetBalancesRequest {
	return &GetBalancesRequest{client: c}
}

func (r *GetBalancesRequest) Method() string {
	return "balances"
}

func (r *GetBalancesRequest) Do(ctx context.Context) ([]Balance, error) {
	var balances []Balance
	if err := r.client.Query(ctx, r.Method(), nil, &balances); err != nil {
		return nil, err
	}

	return balances, nil
}
