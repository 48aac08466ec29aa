package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/gemini/pkg/cmd/cmdutil"
	"github.com/c9s/gemini/pkg/exchange/gemini/geminiapi"
)

const timeLayout = "2006-01-02 15:04:05.000"

func init() {
	orderNewCmd.Flags().String("symbol", "", "the trading pair, like btcusd")
	orderNewCmd.Flags().String("side", "", "buy or sell")
	orderNewCmd.Flags().String("amount", "", "the order amount in base currency")
	orderNewCmd.Flags().String("price", "", "the limit price in quote currency")
	orderNewCmd.Flags().String("stop-price", "", "the stop price, makes the order an exchange stop limit order")
	orderNewCmd.Flags().String("client-order-id", "", "the client order id, a random uuid is used when empty")
	orderNewCmd.Flags().StringSlice("options", nil, "order execution options, like maker-or-cancel")

	orderCmd.AddCommand(orderNewCmd)
	orderCmd.AddCommand(orderStatusCmd)
	orderCmd.AddCommand(orderCancelCmd)
	orderCmd.AddCommand(orderCancelAllCmd)
	orderCmd.AddCommand(orderCancelSessionCmd)
	RootCmd.AddCommand(orderCmd)
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place, query and cancel orders",
}

// go run ./cmd/gemini order new --symbol btcusd --side buy --amount 0.01 --price 20000
var orderNewCmd = &cobra.Command{
	Use:   "new --symbol SYMBOL --side SIDE --amount AMOUNT --price PRICE",
	Short: "Place a new limit order",
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

		req, err := newOrderRequestFromFlags(cmd, client)
		if err != nil {
			return err
		}

		order, err := req.Do(cmd.Context())
		if err != nil {
			return err
		}

		log.Infof("order %d created", order.OrderID)
		return renderOrders(cmd, format, order, []geminiapi.Order{*order})
	},
}

func newOrderRequestFromFlags(cmd *cobra.Command, client *geminiapi.RestClient) (*geminiapi.NewOrderRequest, error) {
	flags := cmd.Flags()

	symbol, _ := flags.GetString("symbol")
	if symbol == "" {
		return nil, fmt.Errorf("--symbol is required")
	}

	side, _ := flags.GetString("side")
	amountStr, _ := flags.GetString("amount")
	priceStr, _ := flags.GetString("price")
	stopPriceStr, _ := flags.GetString("stop-price")
	clientOrderID, _ := flags.GetString("client-order-id")
	options, _ := flags.GetStringSlice("options")

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --amount %q: %w", amountStr, err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --price %q: %w", priceStr, err)
	}

	if clientOrderID == "" {
		clientOrderID = uuid.New().String()
	}

	req := client.NewNewOrderRequest().
		Symbol(symbol).
		Side(geminiapi.SideType(side)).
		Amount(amount).
		Price(price).
		ClientOrderID(clientOrderID)

	if stopPriceStr != "" {
		stopPrice, err := decimal.NewFromString(stopPriceStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --stop-price %q: %w", stopPriceStr, err)
		}

		req.StopPrice(stopPrice).OrderType(geminiapi.OrderTypeExchangeStopLimit)
	}

	if len(options) > 0 {
		var orderOptions []geminiapi.OrderOption
		for _, o := range options {
			orderOptions = append(orderOptions, geminiapi.OrderOption(o))
		}

		req.Options(orderOptions...)
	}

	return req, nil
}

// go run ./cmd/gemini order status 44375901
var orderStatusCmd = &cobra.Command{
	Use:   "status ORDER_ID",
	Short: "Show the status of an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		orderID, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		order, err := client.NewGetOrderStatusRequest().OrderID(orderID).Do(cmd.Context())
		if err != nil {
			return err
		}

		return renderOrders(cmd, format, order, []geminiapi.Order{*order})
	},
}

// go run ./cmd/gemini order cancel 44375901
var orderCancelCmd = &cobra.Command{
	Use:   "cancel ORDER_ID",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		orderID, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		order, err := client.NewCancelOrderRequest().OrderID(orderID).Do(cmd.Context())
		if err != nil {
			return err
		}

		log.Infof("order %d canceled", order.OrderID)
		return renderOrders(cmd, format, order, []geminiapi.Order{*order})
	},
}

// go run ./cmd/gemini order cancel-all
var orderCancelAllCmd = &cobra.Command{
	Use:   "cancel-all",
	Short: "Cancel all outstanding orders of the account, including other sessions",
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

		resp, err := client.NewCancelAllOrdersRequest().Do(cmd.Context())
		if err != nil {
			return err
		}

		return renderCancelOrders(cmd, format, resp)
	},
}

// go run ./cmd/gemini order cancel-session
var orderCancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the orders placed by this api session",
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

		resp, err := client.NewCancelSessionOrdersRequest().Do(cmd.Context())
		if err != nil {
			return err
		}

		return renderCancelOrders(cmd, format, resp)
	},
}

func parseOrderID(s string) (int64, error) {
	orderID, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q: %w", s, err)
	}

	return orderID, nil
}

func renderOrders(cmd *cobra.Command, format OutputFormat, v interface{}, orders []geminiapi.Order) error {
	return render(cmd.OutOrStdout(), format, v, func(t table.Writer) {
		t.AppendHeader(table.Row{"Order ID", "Client Order ID", "Symbol", "Side", "Type", "Price", "Original", "Executed", "Remaining", "Live", "Cancelled"})
		for _, o := range orders {
			t.AppendRow(table.Row{
				o.OrderID, o.ClientOrderID, o.Symbol, o.Side, o.Type,
				o.Price, o.OriginalAmount, o.ExecutedAmount, o.RemainingAmount,
				o.IsLive, o.IsCancelled,
			})
		}
	})
}

func renderCancelOrders(cmd *cobra.Command, format OutputFormat, resp *geminiapi.CancelOrdersResponse) error {
	return render(cmd.OutOrStdout(), format, resp, func(t table.Writer) {
		t.SetTitle("result: " + resp.Result)
		t.AppendHeader(table.Row{"Order ID", "Status"})
		for _, id := range resp.Details.CancelledOrders {
			t.AppendRow(table.Row{id, "cancelled"})
		}

		for _, id := range resp.Details.CancelRejects {
			t.AppendRow(table.Row{id, "rejected"})
		}
	})
}
