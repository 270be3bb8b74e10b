package wallex

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/wallex/pkg/domain"
)

func TestClient_Markets(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{
		"status": true, "code": 200, "message": "The operation was successful",
		"result": {"symbols": {
			"BTCUSDT": {"symbol": "BTCUSDT", "baseAsset": "BTC", "quoteAsset": "USDT", "stepSize": 6, "tickSize": 2,
				"minQty": "0.000001", "minNotional": 5,
				"stats": {"bidPrice": "27000.5", "24h_ch": -1.2, "lastTradeSide": "BUY", "direction": {"SELL": 40, "BUY": 60}},
				"createdAt": "2021-07-17T06:17:35.000000Z"},
			"ETHUSDT": {"symbol": "ETHUSDT", "baseAsset": "ETH", "quoteAsset": "USDT", "stepSize": 4, "tickSize": 2,
				"stats": {"bidPrice": null}, "createdAt": "2021-07-17T06:17:35.000000Z"}
		}}
	}`)

	markets, err := srv.client("").Markets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 2)

	symbols := []string{markets[0].Symbol, markets[1].Symbol}
	assert.ElementsMatch(t, []string{"BTCUSDT", "ETHUSDT"}, symbols)

	btc := markets[0]
	assert.Equal(t, "BTCUSDT", btc.Symbol)
	assert.Equal(t, 6.0, btc.StepSize)
	assert.Equal(t, "0.000001", btc.MinQty.String())
	assert.Equal(t, domain.NumberNative, btc.MinNotional.Kind())
	assert.Equal(t, "27000.5", btc.Stats.BidPrice.String())
	assert.Equal(t, "-1.2", btc.Stats.Change24h.String())
	assert.Equal(t, domain.SideBuy, btc.Stats.LastTradeSide)
	assert.Equal(t, domain.TradeDirections{Sell: 40, Buy: 60}, btc.Stats.Direction)
	assert.Equal(t, 2021, btc.CreatedAt.Year())

	assert.True(t, markets[1].Stats.BidPrice.IsNull())

	req := srv.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, marketsPath, req.Path)
}

func TestClient_Currencies(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"status": true, "result": [
		{"key": "BTC", "name_en": "Bitcoin", "rank": 1, "price": 27000, "percent_change_24h": "-0.5", "ath_date": null,
		 "created_at": "2022-01-01T00:00:00Z", "updated_at": "2023-01-01T00:00:00Z"},
		{"key": "ETH", "name_en": "Ethereum", "rank": 2, "price": "1800.1"}
	]}`)

	currencies, err := srv.client("").Currencies(context.Background())
	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.Equal(t, "BTC", currencies[0].Key)
	assert.Equal(t, "Bitcoin", currencies[0].NameEn)
	assert.Equal(t, 1, currencies[0].Rank)
	assert.Equal(t, "-0.5", currencies[0].PercentChange24h.String())
	assert.True(t, currencies[0].ATHDate.IsZero())
	assert.Equal(t, "1800.1", currencies[1].Price.String())
	assert.Equal(t, currenciesPath, srv.last(t).Path)
}

func TestClient_MarketOrders(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"status": true, "result": {
		"ask": [{"price": "27001", "quantity": "0.5", "sum": "13500.5"}],
		"bid": [{"price": 26999, "quantity": 1, "sum": 26999}, {"price": "26998", "quantity": "2", "sum": "53996"}]
	}}`)

	book, err := srv.client("").MarketOrders(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, book.Ask, 1)
	require.Len(t, book.Bid, 2)
	assert.Equal(t, "27001", book.Ask[0].Price.String())
	assert.Equal(t, "26999", book.Bid[0].Price.String())

	req := srv.last(t)
	assert.Equal(t, depthPath, req.Path)
	assert.Equal(t, []string{"BTCUSDT"}, req.Query["symbol"])
}

func TestClient_MarketTrades(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"status": true, "result": {"latestTrades": [
		{"symbol": "BTCUSDT", "quantity": "0.01", "price": "27000", "sum": "270", "timestamp": "2023-05-01T10:00:00Z"}
	]}}`)

	trades, err := srv.client("").MarketTrades(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "BTCUSDT", trades[0].Symbol)
	assert.Equal(t, "270", trades[0].Sum.String())
	assert.True(t, trades[0].Timestamp.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"BTCUSDT"}, srv.last(t).Query["symbol"])
}

func TestClient_Candles(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"status": true, "result": {
		"s": "ok",
		"t": [1000, 2000],
		"o": ["1", "2"],
		"h": ["1.1", "2.1"],
		"l": ["0.9", "1.9"],
		"c": ["1.05", "2.05"],
		"v": ["10", "20"]
	}}`)

	from := time.Unix(1000, 999_000_000)
	to := time.Unix(2000, 500_000_000)
	candles, err := srv.client("").Candles(context.Background(), "BTCUSDT", domain.Resolution1m, from, to)
	require.NoError(t, err)

	expected := []domain.Candle{
		{
			Timestamp: time.UnixMilli(1_000_000).UTC(),
			Open:      domain.Text("1"),
			High:      domain.Text("1.1"),
			Low:       domain.Text("0.9"),
			Close:     domain.Text("1.05"),
			Volume:    domain.Text("10"),
		},
		{
			Timestamp: time.UnixMilli(2_000_000).UTC(),
			Open:      domain.Text("2"),
			High:      domain.Text("2.1"),
			Low:       domain.Text("1.9"),
			Close:     domain.Text("2.05"),
			Volume:    domain.Text("20"),
		},
	}
	assert.Equal(t, expected, candles)

	req := srv.last(t)
	assert.Equal(t, historyPath, req.Path)
	assert.Equal(t, []string{"BTCUSDT"}, req.Query["symbol"])
	assert.Equal(t, []string{"1"}, req.Query["resolution"])
	assert.Equal(t, []string{"1000"}, req.Query["from"])
	assert.Equal(t, []string{"2000"}, req.Query["to"])
}

func TestClient_CandlesMismatchedArrays(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"status": true, "result": {
		"t": [1000, 2000], "o": ["1"], "h": ["1.1", "2.1"], "l": ["0.9", "1.9"], "c": ["1.05", "2.05"], "v": ["10", "20"]
	}}`)

	_, err := srv.client("").Candles(context.Background(), "BTCUSDT", domain.Resolution1d, time.Unix(0, 0), time.Unix(3000, 0))
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindInternalServerError, e.Kind)
	assert.Equal(t, srv.URL+historyPath, e.URL)
	assert.Contains(t, e.Message, "malformed candle history")
}

func TestClient_CandlesEmptyHistory(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"status": true, "result": {"s": "no_data"}}`)

	candles, err := srv.client("").Candles(context.Background(), "BTCUSDT", domain.Resolution1h, time.Unix(0, 0), time.Unix(60, 0))
	require.NoError(t, err)
	assert.Empty(t, candles)
}

func TestMarketsFromSymbols(t *testing.T) {
	markets := marketsFromSymbols(map[string]domain.Market{
		"USDTTMN": {Symbol: "USDTTMN"},
		"BTCTMN":  {Symbol: "BTCTMN"},
		"ETHTMN":  {Symbol: "ETHTMN"},
	})

	require.Len(t, markets, 3)
	assert.Equal(t, "BTCTMN", markets[0].Symbol)
	assert.Equal(t, "ETHTMN", markets[1].Symbol)
	assert.Equal(t, "USDTTMN", markets[2].Symbol)

	assert.Empty(t, marketsFromSymbols(nil))
}
