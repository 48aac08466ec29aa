package geminiapi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SideType string

const (
	SideTypeBuy  SideType = "buy"
	SideTypeSell SideType = "sell"
)

type OrderType string

const (
	OrderTypeExchangeLimit     OrderType = "exchange limit"
	OrderTypeExchangeStopLimit OrderType = "exchange stop limit"
)

// OrderOption is an execution option of a limit order.
type OrderOption string

const (
	OrderOptionMakerOrCancel        OrderOption = "maker-or-cancel"
	OrderOptionImmediateOrCancel    OrderOption = "immediate-or-cancel"
	OrderOptionFillOrKill           OrderOption = "fill-or-kill"
	OrderOptionAuctionOnly          OrderOption = "auction-only"
	OrderOptionIndicationOfInterest OrderOption = "indication-of-interest"
)

// MillisecondTimestamp decodes unix millisecond timestamps sent either as
// JSON numbers or as numeric strings.
type MillisecondTimestamp time.Time

func (t *MillisecondTimestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}

	*t = MillisecondTimestamp(time.UnixMilli(ms))
	return nil
}

func (t MillisecondTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UnixMilli())
}

func (t MillisecondTimestamp) Time() time.Time {
	return time.Time(t)
}

func (t MillisecondTimestamp) String() string {
	return time.Time(t).String()
}

type PriceLevel struct {
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"amount"`

	// Timestamp is deprecated by Gemini and may be empty
	Timestamp string `json:"timestamp,omitempty"`
}

type OrderBook struct {
	Bids []PriceLevel `json:"bids"`
	Asks []PriceLevel `json:"asks"`
}

// Trade is a public market trade.
type Trade struct {
	Timestamp   int64                `json:"timestamp"`
	TimestampMs MillisecondTimestamp `json:"timestampms"`
	TradeID     int64                `json:"tid"`
	Price       decimal.Decimal      `json:"price"`
	Amount      decimal.Decimal      `json:"amount"`
	Exchange    string               `json:"exchange"`
	Type        string               `json:"type"`
	Broken      bool                 `json:"broken,omitempty"`
}

type Order struct {
	OrderID           int64                `json:"order_id,string"`
	ClientOrderID     string               `json:"client_order_id,omitempty"`
	Symbol            string               `json:"symbol"`
	Exchange          string               `json:"exchange"`
	Price             decimal.Decimal      `json:"price"`
	AvgExecutionPrice decimal.Decimal      `json:"avg_execution_price"`
	Side              SideType             `json:"side"`
	Type              OrderType            `json:"type"`
	Options           []OrderOption        `json:"options"`
	TimestampMs       MillisecondTimestamp `json:"timestampms"`
	IsLive            bool                 `json:"is_live"`
	IsCancelled       bool                 `json:"is_cancelled"`
	IsHidden          bool                 `json:"is_hidden"`
	WasForced         bool                 `json:"was_forced"`
	ExecutedAmount    decimal.Decimal      `json:"executed_amount"`
	RemainingAmount   decimal.Decimal      `json:"remaining_amount"`
	OriginalAmount    decimal.Decimal      `json:"original_amount"`
}

type CancelOrdersDetails struct {
	CancelledOrders []int64 `json:"cancelledOrders"`
	CancelRejects   []int64 `json:"cancelRejects"`
}

type CancelOrdersResponse struct {
	Result  string              `json:"result"`
	Details CancelOrdersDetails `json:"details"`
}

// MyTrade is a trade of the authenticated account.
type MyTrade struct {
	TradeID       int64                `json:"tid"`
	OrderID       int64                `json:"order_id,string"`
	ClientOrderID string               `json:"client_order_id,omitempty"`
	Price         decimal.Decimal      `json:"price"`
	Amount        decimal.Decimal      `json:"amount"`
	Timestamp     int64                `json:"timestamp"`
	TimestampMs   MillisecondTimestamp `json:"timestampms"`
	Type          string               `json:"type"`
	Aggressor     bool                 `json:"aggressor"`
	FeeCurrency   string               `json:"fee_currency"`
	FeeAmount     decimal.Decimal      `json:"fee_amount"`
	Exchange      string               `json:"exchange"`
	IsAuctionFill bool                 `json:"is_auction_fill"`
	Break         string               `json:"break,omitempty"`
}

type Balance struct {
	Type                   string          `json:"type"`
	Currency               string          `json:"currency"`
	Amount                 decimal.Decimal `json:"amount"`
	Available              decimal.Decimal `json:"available"`
	AvailableForWithdrawal decimal.Decimal `json:"availableForWithdrawal"`
}

type HeartbeatResponse struct {
	Result string `json:"result"`
}
