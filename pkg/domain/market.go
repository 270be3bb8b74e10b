// Package domain defines the shapes exchanged with the Wallex REST API.
package domain

import "time"

// OrderSide side of an order or trade.
type OrderSide string

const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderType order execution type.
type OrderType string

const (
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
)

// Market trading pair listed on the exchange.
type Market struct {
	Symbol             string       `json:"symbol"`
	BaseAsset          string       `json:"baseAsset"`
	BaseAssetPrecision int          `json:"baseAssetPrecision"`
	QuoteAsset         string       `json:"quoteAsset"`
	QuotePrecision     int          `json:"quotePrecision"`
	FaName             string       `json:"faName"`
	FaBaseAsset        string       `json:"faBaseAsset"`
	FaQuoteAsset       string       `json:"faQuoteAsset"`
	StepSize           float64      `json:"stepSize"`
	TickSize           float64      `json:"tickSize"`
	MinQty             NumberString `json:"minQty"`
	MinNotional        NumberString `json:"minNotional"`
	Stats              MarketStats  `json:"stats"`
	CreatedAt          time.Time    `json:"createdAt"`
}

// MarketStats live statistics of a market.
type MarketStats struct {
	BidPrice       NumberString    `json:"bidPrice"`
	AskPrice       NumberString    `json:"askPrice"`
	Change24h      NumberString    `json:"24h_ch"`
	Change7d       NumberString    `json:"7d_ch"`
	Volume24h      NumberString    `json:"24h_volume"`
	Volume7d       NumberString    `json:"7d_volume"`
	QuoteVolume24h NumberString    `json:"24h_quoteVolume"`
	HighPrice24h   NumberString    `json:"24h_highPrice"`
	LowPrice24h    NumberString    `json:"24h_lowPrice"`
	LastPrice      NumberString    `json:"lastPrice"`
	LastQty        NumberString    `json:"lastQty"`
	LastTradeSide  OrderSide       `json:"lastTradeSide"`
	BidVolume      NumberString    `json:"bidVolume"`
	AskVolume      NumberString    `json:"askVolume"`
	BidCount       NumberString    `json:"bidCount"`
	AskCount       NumberString    `json:"askCount"`
	Direction      TradeDirections `json:"direction"`
}

// TradeDirections number of recent trades per side.
type TradeDirections struct {
	Sell int `json:"SELL"`
	Buy  int `json:"BUY"`
}

// MarketOrder single order book row.
type MarketOrder struct {
	Price    NumberString `json:"price"`
	Quantity NumberString `json:"quantity"`
	Sum      NumberString `json:"sum"`
}

// OrderBook market depth split by side.
type OrderBook struct {
	Ask []MarketOrder `json:"ask"`
	Bid []MarketOrder `json:"bid"`
}

// MarketTrade public trade print.
type MarketTrade struct {
	Symbol    string       `json:"symbol"`
	Quantity  NumberString `json:"quantity"`
	Price     NumberString `json:"price"`
	Sum       NumberString `json:"sum"`
	Timestamp time.Time    `json:"timestamp"`
}
