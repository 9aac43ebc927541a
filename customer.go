package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Customer is a stored payer. Customers hold saved cards and can be
// charged without re-collecting card details.
type Customer struct {
	// ID is the customer identifier, prefixed with "cus_".
	ID string `json:"id"`
	// Object is always "customer".
	Object string `json:"object"`
	// LiveMode reports whether the customer was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// DefaultCard is the card charged by default. Depending on the
	// endpoint the API returns it as a full card object or a bare ID.
	DefaultCard *CardOrID `json:"default_card,omitempty"`
	// Email is the customer's email address.
	Email string `json:"email,omitempty"`
	// Description is free-form text attached to the customer.
	Description string `json:"description,omitempty"`
	// Metadata holds arbitrary key-value pairs attached to the customer.
	Metadata Metadata `json:"metadata,omitempty"`
	// Subscriptions holds the customer's subscriptions when the endpoint
	// includes them.
	Subscriptions *ListResponse[Subscription] `json:"subscriptions,omitempty"`
	// Cards holds the customer's saved cards when the endpoint includes
	// them.
	Cards *ListResponse[Card] `json:"cards,omitempty"`
}

// CreateCustomerParams are the parameters for creating a customer. All
// fields are optional.
type CreateCustomerParams struct {
	// Email is the customer's email address.
	Email string `url:"email,omitempty"`
	// Description is free-form text to attach to the customer.
	Description string `url:"description,omitempty"`
	// Card is a token ID to save as the customer's first card.
	Card string `url:"card,omitempty"`
	// Metadata holds arbitrary key-value pairs to attach to the customer.
	Metadata Metadata `url:"metadata,omitempty"`
}

// UpdateCustomerParams are the parameters for updating a customer. Zero
// fields are left unchanged.
type UpdateCustomerParams struct {
	Email       string `url:"email,omitempty"`
	Description string `url:"description,omitempty"`
	// DefaultCard selects which saved card to charge by default.
	DefaultCard string   `url:"default_card,omitempty"`
	Metadata    Metadata `url:"metadata,omitempty"`
}

// CustomerService manages stored customers.
type CustomerService struct {
	client *api.Client
}

// Create creates a customer.
func (s *CustomerService) Create(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	var customer Customer
	if err := s.client.Post(ctx, "/customers", params, &customer); err != nil {
		return nil, wrapError(err)
	}
	return &customer, nil
}

// Retrieve fetches a customer by ID.
func (s *CustomerService) Retrieve(ctx context.Context, id string) (*Customer, error) {
	var customer Customer
	path := fmt.Sprintf("/customers/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &customer); err != nil {
		return nil, wrapError(err)
	}
	return &customer, nil
}

// Update changes a customer's details.
func (s *CustomerService) Update(ctx context.Context, id string, params UpdateCustomerParams) (*Customer, error) {
	var customer Customer
	path := fmt.Sprintf("/customers/%s", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &customer); err != nil {
		return nil, wrapError(err)
	}
	return &customer, nil
}

// Delete removes a customer along with their saved cards and
// subscriptions.
func (s *CustomerService) Delete(ctx context.Context, id string) (*Deleted, error) {
	var deleted Deleted
	path := fmt.Sprintf("/customers/%s", url.PathEscape(id))
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, wrapError(err)
	}
	return &deleted, nil
}

// List returns customers, newest first.
func (s *CustomerService) List(ctx context.Context, params ListParams) (*ListResponse[Customer], error) {
	var list ListResponse[Customer]
	if err := s.client.GetWithParams(ctx, "/customers", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
