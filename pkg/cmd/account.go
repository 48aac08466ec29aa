package cmd

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/gemini/pkg/cmd/cmdutil"
	"github.com/c9s/gemini/pkg/exchange/gemini/geminiapi"
)

func init() {
	myTradesCmd.Flags().String("symbol", "", "the trading pair, like btcusd")
	myTradesCmd.Flags().Duration("since", 0, "only show the trades of the last duration, like 24h")
	myTradesCmd.Flags().Int("limit", geminiapi.DefaultLimitTrades, "the maximum number of trades")

	RootCmd.AddCommand(ordersCmd)
	RootCmd.AddCommand(myTradesCmd)
	RootCmd.AddCommand(balancesCmd)
	RootCmd.AddCommand(heartbeatCmd)
}

// go run ./cmd/gemini orders
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List the active orders of the account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		orders, err := client.NewGetActiveOrdersRequest().Do(cmd.Context())
		if err != nil {
			return err
		}

		return renderOrders(cmd, format, orders, orders)
	},
}

// go run ./cmd/gemini mytrades --symbol btcusd --since 24h
var myTradesCmd = &cobra.Command{
	Use:   "mytrades --symbol SYMBOL [--since DURATION] [--limit N]",
	Short: "Show the trade history of the account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		since, err := cmd.Flags().GetDuration("since")
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewGetMyTradesRequest().Symbol(symbol).LimitTrades(limit)
		if since > 0 {
			req.Timestamp(time.Now().Add(-since))
		}

		trades, err := req.Do(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), format, trades, func(t table.Writer) {
			t.SetTitle(symbol)
			t.AppendHeader(table.Row{"Time", "Trade ID", "Order ID", "Type", "Price", "Amount", "Fee", "Fee Currency", "Aggressor"})
			for _, trade := range trades {
				t.AppendRow(table.Row{
					trade.TimestampMs.Time().Format(timeLayout), trade.TradeID, trade.OrderID, trade.Type,
					trade.Price, trade.Amount, trade.FeeAmount, trade.FeeCurrency, trade.Aggressor,
				})
			}
		})
	},
}

// go run ./cmd/gemini balances
var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show user account balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		balances, err := client.NewGetBalancesRequest().Do(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), format, balances, func(t table.Writer) {
			t.AppendHeader(table.Row{"Currency", "Type", "Amount", "Available", "Available For Withdrawal"})
			for _, b := range balances {
				t.AppendRow(table.Row{b.Currency, b.Type, b.Amount, b.Available, b.AvailableForWithdrawal})
			}
		})
	},
}

// go run ./cmd/gemini heartbeat
var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Send a heartbeat to keep the api session alive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		resp, err := client.NewHeartbeatRequest().Do(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), format, resp, func(t table.Writer) {
			t.AppendHeader(table.Row{"Result"})
			t.AppendRow(table.Row{resp.Result})
		})
	},
}
