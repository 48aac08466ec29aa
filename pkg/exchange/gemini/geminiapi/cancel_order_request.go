package geminiapi

import "context"

// CancelOrderRequest cancels one order and returns its final status.
// API: POST /v1/order/cancel
type CancelOrderRequest struct {
	client *RestClient

	orderID int64
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

func (r *CancelOrderRequest) OrderID(orderID int64) *CancelOrderRequest {
	r.orderID = orderID
	return r
}

func (r *CancelOrderRequest) Method() string {
	return "order/cancel"
}

func (r *CancelOrderRequest) GetParameters() (Payload, error) {
	return orderIDParameters(r.orderID)
}

func (r *CancelOrderRequest) Do(ctx context.Context) (*Order, error) {
	params, err := r.GetParameters()
	if err != nil {
		return nil, err
	}

	var order Order
	if err := r.client.Query(ctx, r.Method(), params, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
