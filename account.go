package payjp

import (
	"context"

	"github.com/payjp/client-go/internal/api"
)

// Account is the merchant account the API key belongs to.
type Account struct {
	// ID is the account identifier, prefixed with "acct_".
	ID string `json:"id"`
	// Object is always "account".
	Object string `json:"object"`
	// LiveMode reports whether the account is in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`

	Email               string   `json:"email,omitempty"`
	MerchantName        string   `json:"merchant_name,omitempty"`
	BusinessType        string   `json:"business_type,omitempty"`
	CurrenciesSupported []string `json:"currencies_supported,omitempty"`
	DefaultCurrency     string   `json:"default_currency,omitempty"`
	ProductDetail       string   `json:"product_detail,omitempty"`
	Metadata            Metadata `json:"metadata,omitempty"`
}

// AccountService retrieves the authenticated account.
type AccountService struct {
	client *api.Client
}

// Retrieve fetches the account the configured API key belongs to.
func (s *AccountService) Retrieve(ctx context.Context) (*Account, error) {
	var account Account
	if err := s.client.Get(ctx, "/account", &account); err != nil {
		return nil, wrapError(err)
	}
	return &account, nil
}
