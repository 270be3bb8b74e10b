package wallex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/vadiminshakov/wallex/pkg/domain"
)

const (
	ordersPath        = "/v1/account/orders"
	openOrdersPath    = "/v1/account/openOrders"
	accountTradesPath = "/v1/account/trades"
)

type openOrdersResult struct {
	Orders []domain.Order `json:"orders"`
}

type accountTradesResult struct {
	AccountLatestTrades []domain.Trade `json:"AccountLatestTrades"`
}

// NewClientOrderID returns a random identifier suitable for OrderParams.ClientID.
func NewClientOrderID() string {
	return uuid.New().String()
}

// PlaceOrder submits an order and returns it as recorded by the exchange.
func (c *Client) PlaceOrder(ctx context.Context, params domain.OrderParams) (domain.Order, error) {
	return call[domain.Order](ctx, c, request{
		method: http.MethodPost,
		path:   ordersPath,
		body:   params,
		auth:   true,
	})
}

// CancelOrder cancels the order with the given client order id.
func (c *Client) CancelOrder(ctx context.Context, clientOrderID string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   ordersPath,
		query:  query("clientOrderID", clientOrderID),
		auth:   true,
	}, nil)
}

// Order looks up a single order by its client order id.
func (c *Client) Order(ctx context.Context, clientOrderID string) (domain.Order, error) {
	return call[domain.Order](ctx, c, request{
		method: http.MethodGet,
		path:   ordersPath + "/" + url.PathEscape(clientOrderID),
		auth:   true,
	})
}

// OpenOrders returns the open orders, optionally restricted to symbol.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]domain.Order, error) {
	res, err := call[openOrdersResult](ctx, c, request{
		method: http.MethodGet,
		path:   openOrdersPath,
		query:  query("symbol", symbol),
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// Trades returns the account trade history. Empty filter fields are not sent.
func (c *Client) Trades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error) {
	res, err := call[accountTradesResult](ctx, c, request{
		method: http.MethodGet,
		path:   accountTradesPath,
		query:  query("symbol", filter.Symbol, "side", string(filter.Side)),
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return res.AccountLatestTrades, nil
}
