package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c9s/gemini/pkg/cmd/cmdutil"
	"github.com/c9s/gemini/pkg/exchange/gemini/geminiapi"
)

func init() {
	RootCmd.AddCommand(queryCmd)
}

// go run ./cmd/gemini query order/status order_id=44375901
var queryCmd = &cobra.Command{
	Use:   "query METHOD [KEY=VALUE...]",
	Short: "Send a raw api method and print the json response",
	Long: `Send a raw api method like "symbols", "book/btcusd" or "order/status".
Payload values that look like integers are sent as numbers, everything else as strings.
The payload is only used by private methods.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		payload, err := parsePayloadArgs(args[1:])
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		v, err := client.Dispatch(cmd.Context(), args[0], payload)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), format, json.RawMessage(v.MarshalTo(nil)), nil)
	},
}

func parsePayloadArgs(args []string) (geminiapi.Payload, error) {
	payload := geminiapi.Payload{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid payload argument %q, expecting KEY=VALUE", arg)
		}

		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			payload[key] = n
		} else {
			payload[key] = value
		}
	}

	return payload, nil
}
