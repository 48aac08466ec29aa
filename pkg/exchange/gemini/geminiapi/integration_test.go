package geminiapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/gemini/pkg/testutil"
)

func TestClient_Integration(t *testing.T) {
	key, secret, ok := testutil.IntegrationTestConfigured(t, "GEMINI")
	if !ok {
		t.Skip("GEMINI api key is not configured, skipping integration test")
	}

	client := NewClient(WithBaseURL(testutil.IntegrationTestBaseURL("GEMINI", SandboxAPIURL)))
	client.Auth(key, secret)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	t.Run("GetSymbolsRequest", func(t *testing.T) {
		symbols, err := client.NewGetSymbolsRequest().Do(ctx)
		assert.NoError(t, err)
		assert.Contains(t, symbols, "btcusd")
	})

	t.Run("GetBookRequest", func(t *testing.T) {
		book, err := client.NewGetBookRequest().Symbol("btcusd").Do(ctx)
		assert.NoError(t, err)
		t.Logf("book: %d bids, %d asks", len(book.Bids), len(book.Asks))
	})

	t.Run("GetBalancesRequest", func(t *testing.T) {
		balances, err := client.NewGetBalancesRequest().Do(ctx)
		assert.NoError(t, err)
		t.Logf("balances: %+v", balances)
	})

	t.Run("GetActiveOrdersRequest", func(t *testing.T) {
		orders, err := client.NewGetActiveOrdersRequest().Do(ctx)
		assert.NoError(t, err)
		t.Logf("orders: %+v", orders)
	})

	t.Run("GetMyTradesRequest", func(t *testing.T) {
		trades, err := client.NewGetMyTradesRequest().Symbol("btcusd").LimitTrades(10).Do(ctx)
		assert.NoError(t, err)
		t.Logf("trades: %+v", trades)
	})
}
