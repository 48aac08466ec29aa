package geminiapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/gemini/pkg/testing/httptesting"
)

const orderStatusJSON = `{
  "order_id": "44375901",
  "id": "44375901",
  "symbol": "btcusd",
  "exchange": "gemini",
  "avg_execution_price": "400.00",
  "side": "buy",
  "type": "exchange limit",
  "timestamp": "1494870642",
  "timestampms": 1494870642156,
  "is_live": false,
  "is_cancelled": false,
  "is_hidden": false,
  "was_forced": false,
  "executed_amount": "3",
  "remaining_amount": "0",
  "client_order_id": "20170208_example",
  "options": ["maker-or-cancel"],
  "price": "400.00",
  "original_amount": "3"
}`

func replyWith(content string) httptesting.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, content), nil
	}
}

func TestGetSymbolsRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.GET("/v1/symbols", replyWith(`["btcusd","ethbtc","ethusd"]`))

	symbols, err := client.NewGetSymbolsRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"btcusd", "ethbtc", "ethusd"}, symbols)
}

func TestGetBookRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.GET("/v1/book/btcusd", replyWith(`{
		"bids": [{"price": "3607.85", "amount": "6.643373", "timestamp": "1547147541"}],
		"asks": [{"price": "3607.86", "amount": "14.68205084", "timestamp": "1547147541"}]
	}`))

	book, err := client.NewGetBookRequest().Symbol("btcusd").Do(context.Background())
	require.NoError(t, err)
	require.Len(t, book.Bids, 1)
	require.Len(t, book.Asks, 1)
	assert.Equal(t, "3607.85", book.Bids[0].Price.String())
	assert.Equal(t, "14.68205084", book.Asks[0].Amount.String())

	req := transport.Requests()[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/book/btcusd", req.URL.Path)
	assertNoAuthHeaders(t, req)
}

func TestGetBookRequest_MissingSymbol(t *testing.T) {
	client, transport := newTestClient()

	_, err := client.NewGetBookRequest().Do(context.Background())
	assert.Error(t, err)
	assert.Empty(t, transport.Requests())
}

func TestGetBookAndTradesRequest_InvalidSymbol(t *testing.T) {
	client, transport := newTestClient()

	for _, symbol := range []string{"x/../../order/new", "..", "btc usd", "btc%2Fusd"} {
		_, err := client.NewGetBookRequest().Symbol(symbol).Do(context.Background())
		assert.Error(t, err, "book symbol %q", symbol)

		_, err = client.NewGetTradesRequest().Symbol(symbol).Do(context.Background())
		assert.Error(t, err, "trades symbol %q", symbol)
	}

	assert.Empty(t, transport.Requests())
}

func TestGetTradesRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.GET("/v1/trades/btcusd", replyWith(`[{
		"timestamp": 1547146811,
		"timestampms": 1547146811357,
		"tid": 5335307668,
		"price": "3610.85",
		"amount": "0.27413495",
		"exchange": "gemini",
		"type": "buy"
	}]`))

	trades, err := client.NewGetTradesRequest().Symbol("btcusd").Do(context.Background())
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, int64(5335307668), trades[0].TradeID)
	assert.Equal(t, int64(1547146811357), trades[0].TimestampMs.Time().UnixMilli())
	assert.Equal(t, "buy", trades[0].Type)

	_, err = client.NewGetTradesRequest().Do(context.Background())
	assert.Error(t, err)
}

func TestNewOrderRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/order/new", replyWith(orderStatusJSON))

	order, err := client.NewNewOrderRequest().
		Symbol("btcusd").
		Amount(decimal.RequireFromString("3")).
		Price(decimal.RequireFromString("400.00")).
		Side(SideTypeBuy).
		ClientOrderID("20170208_example").
		Options(OrderOptionMakerOrCancel).
		Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(44375901), order.OrderID)
	assert.Equal(t, OrderTypeExchangeLimit, order.Type)
	assert.Equal(t, []OrderOption{OrderOptionMakerOrCancel}, order.Options)
	assert.True(t, order.ExecutedAmount.Equal(decimal.NewFromInt(3)))

	p := decodeHeaderPayload(t, transport.Requests()[0])
	assert.Equal(t, "/v1/order/new", p[PayloadKeyRequest])
	assert.Equal(t, "btcusd", p["symbol"])
	assert.Equal(t, "3", p["amount"])
	assert.Equal(t, "400", p["price"])
	assert.Equal(t, "buy", p["side"])
	assert.Equal(t, "exchange limit", p["type"])
	assert.Equal(t, "20170208_example", p["client_order_id"])
	assert.Equal(t, []interface{}{"maker-or-cancel"}, p["options"])
}

func TestNewOrderRequest_GetParameters(t *testing.T) {
	client := NewClient()

	params, err := client.NewNewOrderRequest().
		Symbol("ethusd").
		Amount(decimal.RequireFromString("0.5")).
		Price(decimal.RequireFromString("1800.25")).
		Side(SideTypeSell).
		GetParameters()
	require.NoError(t, err)
	assert.Equal(t, Payload{
		"symbol": "ethusd",
		"amount": "0.5",
		"price":  "1800.25",
		"side":   "sell",
		"type":   "exchange limit",
	}, params)

	tests := []struct {
		name string
		req  *NewOrderRequest
	}{
		{"missing symbol", client.NewNewOrderRequest().Amount(decimal.NewFromInt(1)).Price(decimal.NewFromInt(1)).Side(SideTypeBuy)},
		{"zero amount", client.NewNewOrderRequest().Symbol("btcusd").Price(decimal.NewFromInt(1)).Side(SideTypeBuy)},
		{"zero price", client.NewNewOrderRequest().Symbol("btcusd").Amount(decimal.NewFromInt(1)).Side(SideTypeBuy)},
		{"invalid side", client.NewNewOrderRequest().Symbol("btcusd").Amount(decimal.NewFromInt(1)).Price(decimal.NewFromInt(1)).Side("hold")},
		{"stop limit without stop price", client.NewNewOrderRequest().Symbol("btcusd").Amount(decimal.NewFromInt(1)).Price(decimal.NewFromInt(1)).Side(SideTypeBuy).OrderType(OrderTypeExchangeStopLimit)},
		{"unsupported type", client.NewNewOrderRequest().Symbol("btcusd").Amount(decimal.NewFromInt(1)).Price(decimal.NewFromInt(1)).Side(SideTypeBuy).OrderType("market buy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.GetParameters()
			assert.Error(t, err)
		})
	}
}

func TestNewOrderRequest_StopLimit(t *testing.T) {
	params, err := NewClient().NewNewOrderRequest().
		Symbol("btcusd").
		Amount(decimal.NewFromInt(1)).
		Price(decimal.NewFromInt(30000)).
		StopPrice(decimal.NewFromInt(29900)).
		Side(SideTypeSell).
		OrderType(OrderTypeExchangeStopLimit).
		GetParameters()
	require.NoError(t, err)
	assert.Equal(t, "29900", params["stop_price"])
	assert.Equal(t, "exchange stop limit", params["type"])
}

func TestGetOrderStatusRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/order/status", replyWith(orderStatusJSON))

	order, err := client.NewGetOrderStatusRequest().OrderID(44375901).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "20170208_example", order.ClientOrderID)
	assert.Equal(t, "btcusd", order.Symbol)
	assert.Equal(t, int64(1494870642156), order.TimestampMs.Time().UnixMilli())

	p := decodeHeaderPayload(t, transport.Requests()[0])
	assert.Equal(t, json.Number("44375901"), p["order_id"])

	_, err = client.NewGetOrderStatusRequest().Do(context.Background())
	assert.Error(t, err)
	assert.Len(t, transport.Requests(), 1)
}

func TestCancelOrderRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/order/cancel", replyWith(`{"order_id":"106817811","symbol":"btcusd","is_live":false,"is_cancelled":true}`))

	order, err := client.NewCancelOrderRequest().OrderID(106817811).Do(context.Background())
	require.NoError(t, err)
	assert.True(t, order.IsCancelled)

	p := decodeHeaderPayload(t, transport.Requests()[0])
	assert.Equal(t, "/v1/order/cancel", p[PayloadKeyRequest])
	assert.Equal(t, json.Number("106817811"), p["order_id"])
}

func TestCancelAllAndSessionOrdersRequest(t *testing.T) {
	client, transport := newTestClient()
	reply := replyWith(`{"result":"ok","details":{"cancelledOrders":[330429345,330429346],"cancelRejects":[]}}`)
	transport.POST("/v1/order/cancel/all", reply)
	transport.POST("/v1/order/cancel/session", reply)

	resp, err := client.NewCancelAllOrdersRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Result)
	assert.Equal(t, []int64{330429345, 330429346}, resp.Details.CancelledOrders)

	_, err = client.NewCancelSessionOrdersRequest().Do(context.Background())
	require.NoError(t, err)

	requests := transport.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "/v1/order/cancel/all", decodeHeaderPayload(t, requests[0])[PayloadKeyRequest])
	assert.Equal(t, "/v1/order/cancel/session", decodeHeaderPayload(t, requests[1])[PayloadKeyRequest])
}

func TestGetActiveOrdersRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/orders", replyWith("["+orderStatusJSON+"]"))

	orders, err := client.NewGetActiveOrdersRequest().Do(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, SideTypeBuy, orders[0].Side)
}

func TestGetMyTradesRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/mytrades", replyWith(`[{
		"price": "3648.09",
		"amount": "0.0027343246",
		"timestamp": 1547232911,
		"timestampms": 1547232911021,
		"type": "Buy",
		"aggressor": true,
		"fee_currency": "USD",
		"fee_amount": "0.024937655575035",
		"tid": 107317526,
		"order_id": "107317524",
		"exchange": "gemini",
		"is_auction_fill": false
	}]`))

	since := time.Unix(1547220000, 0)
	trades, err := client.NewGetMyTradesRequest().Symbol("btcusd").Timestamp(since).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, int64(107317524), trades[0].OrderID)
	assert.True(t, trades[0].Aggressor)
	assert.Equal(t, "USD", trades[0].FeeCurrency)

	p := decodeHeaderPayload(t, transport.Requests()[0])
	assert.Equal(t, "btcusd", p["symbol"])
	assert.Equal(t, json.Number("1547220000"), p["timestamp"])
	assert.Equal(t, json.Number("50"), p["limit_trades"])
}

func TestGetMyTradesRequest_GetParameters(t *testing.T) {
	client := NewClient()

	params, err := client.NewGetMyTradesRequest().Symbol("btcusd").GetParameters()
	require.NoError(t, err)
	assert.Equal(t, DefaultLimitTrades, params["limit_trades"])
	assert.NotContains(t, params, "timestamp")

	params, err = client.NewGetMyTradesRequest().Symbol("btcusd").LimitTrades(0).GetParameters()
	require.NoError(t, err)
	assert.Equal(t, 50, params["limit_trades"])

	params, err = client.NewGetMyTradesRequest().Symbol("btcusd").LimitTrades(500).GetParameters()
	require.NoError(t, err)
	assert.Equal(t, 500, params["limit_trades"])

	_, err = client.NewGetMyTradesRequest().GetParameters()
	assert.Error(t, err)
}

func TestGetBalancesRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/balances", replyWith(`[
		{"type": "exchange", "currency": "BTC", "amount": "1154.62034001", "available": "1129.10517279", "availableForWithdrawal": "1129.10517279"},
		{"type": "exchange", "currency": "USD", "amount": "18722.79", "available": "14481.62", "availableForWithdrawal": "14481.62"}
	]`))

	balances, err := client.NewGetBalancesRequest().Do(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "BTC", balances[0].Currency)
	assert.Equal(t, "14481.62", balances[1].Available.String())
}

func TestHeartbeatRequest(t *testing.T) {
	client, transport := newTestClient()
	transport.POST("/v1/heartbeat", replyWith(`{"result":"ok"}`))

	resp, err := client.NewHeartbeatRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Result)

	p := decodeHeaderPayload(t, transport.Requests()[0])
	assert.Len(t, p, 2)
}
