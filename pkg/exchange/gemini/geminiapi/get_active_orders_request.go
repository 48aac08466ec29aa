package geminiapi

import "context"

// GetActiveOrdersRequest lists the live orders of the account.
// API: POST /v1/orders
type GetActiveOrdersRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetActiveOrdersRequest() *GetActiveOrdersRequest {
	return &GetActiveOrdersRequest{client: c}
}

func (r *GetActiveOrdersRequest) Method() string {
	return "orders"
}

func (r *GetActiveOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := r.client.Query(ctx, r.Method(), nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
