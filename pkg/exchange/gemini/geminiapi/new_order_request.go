package geminiapi

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NewOrderRequest places a new limit order.
// API: POST /v1/order/new
type NewOrderRequest struct {
	client *RestClient

	symbol    string
	amount    decimal.Decimal
	price     decimal.Decimal
	side      SideType
	orderType OrderType

	clientOrderID *string
	stopPrice     *decimal.Decimal
	options       []OrderOption
}

func (c *RestClient) NewNewOrderRequest() *NewOrderRequest {
	return &NewOrderRequest{
		client:    c,
		orderType: OrderTypeExchangeLimit,
	}
}

func (r *NewOrderRequest) Symbol(symbol string) *NewOrderRequest {
	r.symbol = symbol
	return r
}

func (r *NewOrderRequest) Amount(amount decimal.Decimal) *NewOrderRequest {
	r.amount = amount
	return r
}

func (r *NewOrderRequest) Price(price decimal.Decimal) *NewOrderRequest {
	r.price = price
	return r
}

func (r *NewOrderRequest) Side(side SideType) *NewOrderRequest {
	r.side = side
	return r
}

func (r *NewOrderRequest) OrderType(orderType OrderType) *NewOrderRequest {
	r.orderType = orderType
	return r
}

func (r *NewOrderRequest) ClientOrderID(clientOrderID string) *NewOrderRequest {
	r.clientOrderID = &clientOrderID
	return r
}

// StopPrice is required by OrderTypeExchangeStopLimit.
func (r *NewOrderRequest) StopPrice(stopPrice decimal.Decimal) *NewOrderRequest {
	r.stopPrice = &stopPrice
	return r
}

func (r *NewOrderRequest) Options(options ...OrderOption) *NewOrderRequest {
	r.options = options
	return r
}

func (r *NewOrderRequest) Method() string {
	return "order/new"
}

// GetParameters builds the payload of the request.
func (r *NewOrderRequest) GetParameters() (Payload, error) {
	if len(r.symbol) == 0 {
		return nil, errors.New("symbol is required for NewOrderRequest")
	}

	if !r.amount.IsPositive() {
		return nil, errors.Errorf("amount must be positive, got %s", r.amount.String())
	}

	if !r.price.IsPositive() {
		return nil, errors.Errorf("price must be positive, got %s", r.price.String())
	}

	switch r.side {
	case SideTypeBuy, SideTypeSell:
	default:
		return nil, errors.Errorf("side %q is not a valid value, valid values are: buy, sell", r.side)
	}

	switch r.orderType {
	case OrderTypeExchangeLimit:
	case OrderTypeExchangeStopLimit:
		if r.stopPrice == nil {
			return nil, errors.New("stop price is required for stop limit orders")
		}
	default:
		return nil, errors.Errorf("order type %q is not supported", r.orderType)
	}

	params := Payload{
		"symbol": r.symbol,
		"amount": r.amount.String(),
		"price":  r.price.String(),
		"side":   string(r.side),
		"type":   string(r.orderType),
	}

	if r.clientOrderID != nil {
		params["client_order_id"] = *r.clientOrderID
	}

	if r.stopPrice != nil {
		params["stop_price"] = r.stopPrice.String()
	}

	if len(r.options) > 0 {
		options := make([]string, len(r.options))
		for i, o := range r.options {
			options[i] = string(o)
		}

		params["options"] = options
	}

	return params, nil
}

func (r *NewOrderRequest) Do(ctx context.Context) (*Order, error) {
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
