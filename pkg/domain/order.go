package domain

import "time"

// OrderParams order intent submitted by the caller.
type OrderParams struct {
	Symbol   string       `json:"symbol"`
	Type     OrderType    `json:"type"`
	Side     OrderSide    `json:"side"`
	Price    NumberString `json:"price"`
	Quantity NumberString `json:"quantity"`
	ClientID string       `json:"client_id,omitempty"`
}

// Order order as known by the exchange.
type Order struct {
	Symbol          string       `json:"symbol"`
	Type            OrderType    `json:"type"`
	Side            OrderSide    `json:"side"`
	Price           NumberString `json:"price"`
	OrigQty         NumberString `json:"origQty"`
	OrigSum         NumberString `json:"origSum"`
	ExecutedPrice   NumberString `json:"executedPrice"`
	ExecutedQty     NumberString `json:"executedQty"`
	ExecutedSum     NumberString `json:"executedSum"`
	ExecutedPercent NumberString `json:"executedPercent"`
	Status          string       `json:"status"`
	Active          string       `json:"active"`
	ClientOrderID   string       `json:"clientOrderId"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Trade executed fill of one of the account's orders.
type Trade struct {
	Symbol         string       `json:"symbol"`
	Quantity       NumberString `json:"quantity"`
	Price          NumberString `json:"price"`
	Sum            NumberString `json:"sum"`
	Fee            NumberString `json:"fee"`
	FeeCoefficient NumberString `json:"feeCoefficient"`
	FeeAsset       string       `json:"feeAsset"`
	IsBuyer        string       `json:"isBuyer"`
	Timestamp      time.Time    `json:"timestamp"`
}

// TradeFilter optional filters of the account trade history. Empty fields
// are not sent.
type TradeFilter struct {
	Symbol string
	Side   OrderSide
}
