package wallex

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/vadiminshakov/wallex/pkg/domain"
)

const (
	marketsPath    = "/v1/markets"
	currenciesPath = "/v1/currencies/stats"
	depthPath      = "/v1/depth"
	tradesPath     = "/v1/trades"
	historyPath    = "/v1/udf/history"
)

type marketsResult struct {
	Symbols map[string]domain.Market `json:"symbols"`
}

type tradesResult struct {
	LatestTrades []domain.MarketTrade `json:"latestTrades"`
}

// historyResult parallel OHLCV arrays of the UDF history endpoint.
type historyResult struct {
	T []int64               `json:"t"`
	O []domain.NumberString `json:"o"`
	H []domain.NumberString `json:"h"`
	L []domain.NumberString `json:"l"`
	C []domain.NumberString `json:"c"`
	V []domain.NumberString `json:"v"`
}

// Markets returns every listed market, ordered by symbol.
func (c *Client) Markets(ctx context.Context) ([]domain.Market, error) {
	res, err := call[marketsResult](ctx, c, request{method: http.MethodGet, path: marketsPath})
	if err != nil {
		return nil, err
	}
	return marketsFromSymbols(res.Symbols), nil
}

// Currencies returns global statistics of every listed asset.
func (c *Client) Currencies(ctx context.Context) ([]domain.Currency, error) {
	return call[[]domain.Currency](ctx, c, request{method: http.MethodGet, path: currenciesPath})
}

// MarketOrders returns the order book of symbol.
func (c *Client) MarketOrders(ctx context.Context, symbol string) (domain.OrderBook, error) {
	return call[domain.OrderBook](ctx, c, request{
		method: http.MethodGet,
		path:   depthPath,
		query:  query("symbol", symbol),
	})
}

// MarketTrades returns the latest public trades of symbol.
func (c *Client) MarketTrades(ctx context.Context, symbol string) ([]domain.MarketTrade, error) {
	res, err := call[tradesResult](ctx, c, request{
		method: http.MethodGet,
		path:   tradesPath,
		query:  query("symbol", symbol),
	})
	if err != nil {
		return nil, err
	}
	return res.LatestTrades, nil
}

// Candles returns the OHLCV history of symbol between from and to. Both bounds
// are sent as whole seconds since the epoch.
func (c *Client) Candles(ctx context.Context, symbol string, resolution domain.Resolution, from, to time.Time) ([]domain.Candle, error) {
	q := query(
		"symbol", symbol,
		"resolution", string(resolution),
		"from", strconv.FormatInt(from.Unix(), 10),
		"to", strconv.FormatInt(to.Unix(), 10),
	)
	res, err := call[historyResult](ctx, c, request{
		method: http.MethodGet,
		path:   historyPath,
		query:  q,
	})
	if err != nil {
		return nil, err
	}

	candles, err := res.candles()
	if err != nil {
		return nil, c.fail(NewInternalServerError(c.baseURL+historyPath, err.Error()))
	}
	return candles, nil
}

func marketsFromSymbols(symbols map[string]domain.Market) []domain.Market {
	markets := make([]domain.Market, 0, len(symbols))
	for _, m := range symbols {
		markets = append(markets, m)
	}
	sort.Slice(markets, func(i, j int) bool {
		return markets[i].Symbol < markets[j].Symbol
	})
	return markets
}

// candles zips the parallel arrays into bars; all arrays must be the same length.
func (h historyResult) candles() ([]domain.Candle, error) {
	n := len(h.T)
	if len(h.O) != n || len(h.H) != n || len(h.L) != n || len(h.C) != n || len(h.V) != n {
		return nil, fmt.Errorf("malformed candle history: t=%d o=%d h=%d l=%d c=%d v=%d",
			n, len(h.O), len(h.H), len(h.L), len(h.C), len(h.V))
	}

	candles := make([]domain.Candle, n)
	for i, ts := range h.T {
		candles[i] = domain.Candle{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      h.O[i],
			High:      h.H[i],
			Low:       h.L[i],
			Close:     h.C[i],
			Volume:    h.V[i],
		}
	}
	return candles, nil
}
