package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Token is a single-use representation of a card. Tokens are created from
// raw card details, spent once to create a charge or save a card on a
// customer, and cannot be reused.
type Token struct {
	// ID is the token identifier, prefixed with "tok_".
	ID string `json:"id"`
	// Object is always "token".
	Object string `json:"object"`
	// LiveMode reports whether the token was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Used reports whether the token has already been spent.
	Used bool `json:"used"`
	// Card holds the tokenized card.
	Card Card `json:"card"`
}

// CardDetails are the raw card fields submitted when creating a token.
// They are sent as nested form fields of the shape card[number],
// card[exp_month] and so on.
type CardDetails struct {
	// Number is the card number without separators.
	Number string `url:"number"`
	// ExpMonth is the expiration month, 1 through 12.
	ExpMonth int `url:"exp_month"`
	// ExpYear is the four-digit expiration year.
	ExpYear int `url:"exp_year"`
	// CVC is the card verification code.
	CVC string `url:"cvc"`
	// Name is the cardholder name.
	Name string `url:"name,omitempty"`

	AddressLine1 string `url:"address_line1,omitempty"`
	AddressLine2 string `url:"address_line2,omitempty"`
	AddressCity  string `url:"address_city,omitempty"`
	AddressState string `url:"address_state,omitempty"`
	AddressZip   string `url:"address_zip,omitempty"`
	Country      string `url:"country,omitempty"`
	Email        string `url:"email,omitempty"`
	Phone        string `url:"phone,omitempty"`
}

// CreateTokenParams are the parameters for creating a token.
type CreateTokenParams struct {
	// Card holds the raw card details to tokenize.
	Card CardDetails `url:"card"`
}

// TokenService creates and retrieves single-use card tokens.
//
// Handling raw card numbers on a server requires PCI DSS compliance. Most
// integrations should tokenize in the browser with payjp.js and send only
// the resulting token ID to the server.
type TokenService struct {
	client *api.Client
}

// Create exchanges raw card details for a single-use token.
func (s *TokenService) Create(ctx context.Context, params CreateTokenParams) (*Token, error) {
	var token Token
	if err := s.client.Post(ctx, "/tokens", params, &token); err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}

// Retrieve fetches a token by ID.
func (s *TokenService) Retrieve(ctx context.Context, id string) (*Token, error) {
	var token Token
	path := fmt.Sprintf("/tokens/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &token); err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}

// TdsFinish completes 3-D Secure verification for a token after the
// cardholder returns from the issuer's authentication page.
func (s *TokenService) TdsFinish(ctx context.Context, id string) (*Token, error) {
	var token Token
	path := fmt.Sprintf("/tokens/%s/tds_finish", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &token); err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}
