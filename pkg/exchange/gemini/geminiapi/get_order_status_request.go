package geminiapi

import (
	"context"

	"github.com/pkg/errors"
)

// GetOrderStatusRequest queries the status of an order.
// API: POST /v1/order/status
type GetOrderStatusRequest struct {
	client *RestClient

	orderID int64
}

func (c *RestClient) NewGetOrderStatusRequest() *GetOrderStatusRequest {
	return &GetOrderStatusRequest{client: c}
}

func (r *GetOrderStatusRequest) OrderID(orderID int64) *GetOrderStatusRequest {
	r.orderID = orderID
	return r
}

func (r *GetOrderStatusRequest) Method() string {
	return "order/status"
}

func (r *GetOrderStatusRequest) GetParameters() (Payload, error) {
	return orderIDParameters(r.orderID)
}

func (r *GetOrderStatusRequest) Do(ctx context.Context) (*Order, error) {
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

func orderIDParameters(orderID int64) (Payload, error) {
	if orderID <= 0 {
		return nil, errors.Errorf("order id is required, got %d", orderID)
	}

	return Payload{"order_id": orderID}, nil
}
