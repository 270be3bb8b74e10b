package wallex

import (
	"context"
	"net/http"

	"github.com/vadiminshakov/wallex/pkg/domain"
)

const (
	profilePath  = "/v1/account/profile"
	balancesPath = "/v1/account/balances"
	feePath      = "/v1/account/fee"
	cardsPath    = "/v1/account/card-numbers"

	// Bank accounts are read from the card resource and decoded into the
	// bank account shape.
	// TODO: switch to the dedicated IBAN endpoint once the exchange documents one.
	bankAccountsPath = cardsPath
)

type balancesResult struct {
	Balances map[string]domain.Balance `json:"balances"`
}

// Profile returns the account owner's profile.
func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	return call[domain.Profile](ctx, c, request{method: http.MethodGet, path: profilePath, auth: true})
}

// Balances returns the account balances keyed by asset.
func (c *Client) Balances(ctx context.Context) (map[string]domain.Balance, error) {
	res, err := call[balancesResult](ctx, c, request{method: http.MethodGet, path: balancesPath, auth: true})
	if err != nil {
		return nil, err
	}
	return res.Balances, nil
}

// FeeLevels returns the account fee schedule keyed by market symbol.
func (c *Client) FeeLevels(ctx context.Context) (map[string]domain.FeeLevel, error) {
	return call[map[string]domain.FeeLevel](ctx, c, request{method: http.MethodGet, path: feePath, auth: true})
}

// BankingCards returns the registered debit cards.
func (c *Client) BankingCards(ctx context.Context) ([]domain.BankingCard, error) {
	return call[[]domain.BankingCard](ctx, c, request{method: http.MethodGet, path: cardsPath, auth: true})
}

// BankAccounts returns the registered bank accounts.
func (c *Client) BankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	return call[[]domain.BankAccount](ctx, c, request{method: http.MethodGet, path: bankAccountsPath, auth: true})
}
