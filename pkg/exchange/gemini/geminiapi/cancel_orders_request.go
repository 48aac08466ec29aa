package geminiapi

import "context"

// CancelAllOrdersRequest cancels every outstanding order of the account,
// including the orders placed by other sessions.
// API: POST /v1/order/cancel/all
type CancelAllOrdersRequest struct {
	client *RestClient
}

func (c *RestClient) NewCancelAllOrdersRequest() *CancelAllOrdersRequest {
	return &CancelAllOrdersRequest{client: c}
}

func (r *CancelAllOrdersRequest) Method() string {
	return "order/cancel/all"
}

func (r *CancelAllOrdersRequest) Do(ctx context.Context) (*CancelOrdersResponse, error) {
	return cancelOrders(ctx, r.client, r.Method())
}

// CancelSessionOrdersRequest cancels the orders placed with the api key of this session.
// API: POST /v1/order/cancel/session
type CancelSessionOrdersRequest struct {
	client *RestClient
}

func (c *RestClient) NewCancelSessionOrdersRequest() *CancelSessionOrdersRequest {
	return &CancelSessionOrdersRequest{client: c}
}

func (r *CancelSessionOrdersRequest) Method() string {
	return "order/cancel/session"
}

func (r *CancelSessionOrdersRequest) Do(ctx context.Context) (*CancelOrdersResponse, error) {
	return cancelOrders(ctx, r.client, r.Method())
}

func cancelOrders(ctx context.Context, client *RestClient, method string) (*CancelOrdersResponse, error) {
	var resp CancelOrdersResponse
	if err := client.Query(ctx, method, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
