package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/gemini/pkg/cmd/cmdutil"
	"github.com/c9s/gemini/pkg/exchange/gemini/geminiapi"
)

func init() {
	bookCmd.Flags().Int("depth", 0, "only show the first N levels of each side, 0 shows all")

	RootCmd.AddCommand(symbolsCmd)
	RootCmd.AddCommand(bookCmd)
	RootCmd.AddCommand(tradesCmd)
}

// go run ./cmd/gemini symbols
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the symbols available for trading",
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

		symbols, err := client.NewGetSymbolsRequest().Do(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), format, symbols, func(t table.Writer) {
			t.AppendHeader(table.Row{"Symbol"})
			for _, s := range symbols {
				t.AppendRow(table.Row{s})
			}
		})
	},
}

// go run ./cmd/gemini book btcusd --depth 10
var bookCmd = &cobra.Command{
	Use:   "book SYMBOL",
	Short: "Show the current order book of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		book, err := client.NewGetBookRequest().Symbol(args[0]).Do(cmd.Context())
		if err != nil {
			return err
		}

		if depth > 0 {
			book.Bids = truncateLevels(book.Bids, depth)
			book.Asks = truncateLevels(book.Asks, depth)
		}

		return render(cmd.OutOrStdout(), format, book, func(t table.Writer) {
			t.SetTitle(args[0])
			t.AppendHeader(table.Row{"Side", "Price", "Amount"})
			for i := len(book.Asks) - 1; i >= 0; i-- {
				t.AppendRow(table.Row{"ASK", book.Asks[i].Price, book.Asks[i].Amount})
			}

			t.AppendSeparator()
			for _, bid := range book.Bids {
				t.AppendRow(table.Row{"BID", bid.Price, bid.Amount})
			}
		})
	},
}

func truncateLevels(levels []geminiapi.PriceLevel, depth int) []geminiapi.PriceLevel {
	if len(levels) > depth {
		return levels[:depth]
	}

	return levels
}

// go run ./cmd/gemini trades btcusd
var tradesCmd = &cobra.Command{
	Use:   "trades SYMBOL",
	Short: "Show the recent public trades of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		trades, err := client.NewGetTradesRequest().Symbol(args[0]).Do(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), format, trades, func(t table.Writer) {
			t.SetTitle(args[0])
			t.AppendHeader(table.Row{"Time", "Trade ID", "Side", "Price", "Amount"})
			for _, trade := range trades {
				t.AppendRow(table.Row{trade.TimestampMs.Time().Format(timeLayout), trade.TradeID, trade.Type, trade.Price, trade.Amount})
			}
		})
	},
}
