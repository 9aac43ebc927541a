package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// CardThreeDSecureStatus is the 3-D Secure verification state of a card.
type CardThreeDSecureStatus string

const (
	CardThreeDSecureStatusUnverified CardThreeDSecureStatus = "unverified"
	CardThreeDSecureStatusVerified   CardThreeDSecureStatus = "verified"
	CardThreeDSecureStatusAttempted  CardThreeDSecureStatus = "attempted"
	CardThreeDSecureStatusFailed     CardThreeDSecureStatus = "failed"
	CardThreeDSecureStatusError      CardThreeDSecureStatus = "error"
)

// Card is a credit card stored on a customer or attached to a token.
type Card struct {
	// ID is the card identifier, prefixed with "car_".
	ID string `json:"id"`
	// Object is always "card".
	Object string `json:"object"`
	// LiveMode reports whether the card was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Customer is the ID of the owning customer, if any.
	Customer string `json:"customer,omitempty"`
	// Brand is the card brand, for example "Visa".
	Brand string `json:"brand"`
	// CVCCheck is the result of the CVC check: "passed", "failed",
	// "unchecked" or "available".
	CVCCheck string `json:"cvc_check,omitempty"`
	// ExpMonth is the expiration month, 1 through 12.
	ExpMonth int `json:"exp_month"`
	// ExpYear is the four-digit expiration year.
	ExpYear int `json:"exp_year"`
	// Fingerprint uniquely identifies the card number.
	Fingerprint string `json:"fingerprint,omitempty"`
	// Last4 holds the last four digits of the card number.
	Last4 string `json:"last4"`
	// Name is the cardholder name.
	Name string `json:"name,omitempty"`

	AddressLine1    string `json:"address_line1,omitempty"`
	AddressLine2    string `json:"address_line2,omitempty"`
	AddressCity     string `json:"address_city,omitempty"`
	AddressState    string `json:"address_state,omitempty"`
	AddressZip      string `json:"address_zip,omitempty"`
	AddressZipCheck string `json:"address_zip_check,omitempty"`
	Country         string `json:"country,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`

	// ThreeDSecureStatus is the card's 3-D Secure verification state.
	ThreeDSecureStatus CardThreeDSecureStatus `json:"three_d_secure_status,omitempty"`
	// Metadata holds arbitrary key-value pairs attached to the card.
	Metadata Metadata `json:"metadata,omitempty"`
}

// CreateCardParams are the parameters for saving a card on a customer.
type CreateCardParams struct {
	// Card is the ID of a token obtained from payjp.js or the token API.
	Card string `url:"card"`
	// Default makes the new card the customer's default when true.
	Default *bool `url:"default,omitempty"`
	// Metadata holds arbitrary key-value pairs to attach to the card.
	Metadata Metadata `url:"metadata,omitempty"`
}

// UpdateCardParams are the parameters for updating a saved card. Zero
// fields are left unchanged.
type UpdateCardParams struct {
	ExpMonth     int      `url:"exp_month,omitempty"`
	ExpYear      int      `url:"exp_year,omitempty"`
	Name         string   `url:"name,omitempty"`
	AddressLine1 string   `url:"address_line1,omitempty"`
	AddressLine2 string   `url:"address_line2,omitempty"`
	AddressCity  string   `url:"address_city,omitempty"`
	AddressState string   `url:"address_state,omitempty"`
	AddressZip   string   `url:"address_zip,omitempty"`
	Country      string   `url:"country,omitempty"`
	Email        string   `url:"email,omitempty"`
	Phone        string   `url:"phone,omitempty"`
	Metadata     Metadata `url:"metadata,omitempty"`
}

// CardService manages the cards saved on customers. Every method takes
// the owning customer's ID; cards have no top-level endpoint of their own.
type CardService struct {
	client *api.Client
}

// Create saves a tokenized card on a customer.
func (s *CardService) Create(ctx context.Context, customerID string, params CreateCardParams) (*Card, error) {
	var card Card
	path := fmt.Sprintf("/customers/%s/cards", url.PathEscape(customerID))
	if err := s.client.Post(ctx, path, params, &card); err != nil {
		return nil, wrapError(err)
	}
	return &card, nil
}

// Retrieve fetches one of a customer's cards by ID.
func (s *CardService) Retrieve(ctx context.Context, customerID, cardID string) (*Card, error) {
	var card Card
	path := fmt.Sprintf("/customers/%s/cards/%s", url.PathEscape(customerID), url.PathEscape(cardID))
	if err := s.client.Get(ctx, path, &card); err != nil {
		return nil, wrapError(err)
	}
	return &card, nil
}

// Update changes a saved card's expiry, holder details or metadata.
func (s *CardService) Update(ctx context.Context, customerID, cardID string, params UpdateCardParams) (*Card, error) {
	var card Card
	path := fmt.Sprintf("/customers/%s/cards/%s", url.PathEscape(customerID), url.PathEscape(cardID))
	if err := s.client.Post(ctx, path, params, &card); err != nil {
		return nil, wrapError(err)
	}
	return &card, nil
}

// Delete removes a card from a customer.
func (s *CardService) Delete(ctx context.Context, customerID, cardID string) (*Deleted, error) {
	var deleted Deleted
	path := fmt.Sprintf("/customers/%s/cards/%s", url.PathEscape(customerID), url.PathEscape(cardID))
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, wrapError(err)
	}
	return &deleted, nil
}

// List returns a customer's saved cards, newest first.
func (s *CardService) List(ctx context.Context, customerID string, params ListParams) (*ListResponse[Card], error) {
	var list ListResponse[Card]
	path := fmt.Sprintf("/customers/%s/cards", url.PathEscape(customerID))
	if err := s.client.GetWithParams(ctx, path, params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
