package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Tenant is a sub-merchant on a platform account (Platform API).
type Tenant struct {
	// ID is the tenant identifier, prefixed with "ten_".
	ID string `json:"id"`
	// Object is always "tenant".
	Object string `json:"object"`
	// LiveMode reports whether the tenant was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Name is the tenant's display name.
	Name string `json:"name,omitempty"`
	// PlatformFeeRate is the platform's fee rate for this tenant as a
	// decimal string, for example "10.15".
	PlatformFeeRate string `json:"platform_fee_rate,omitempty"`
	// MinimumTransferAmount is the smallest payout the tenant receives.
	MinimumTransferAmount int64 `json:"minimum_transfer_amount,omitempty"`
	// BankAccount is the tenant's payout destination. It is sent as
	// nested form fields of the shape bank_account[bank_code].
	BankAccount *TenantBankAccount `json:"bank_account,omitempty"`

	CurrenciesSupported []string `json:"currencies_supported,omitempty"`
	DefaultCurrency     string   `json:"default_currency,omitempty"`
	Metadata            Metadata `json:"metadata,omitempty"`
}

// TenantBankAccount is a tenant's payout bank account.
type TenantBankAccount struct {
	BankCode          string `json:"bank_code" url:"bank_code"`
	BranchCode        string `json:"branch_code" url:"branch_code"`
	AccountType       string `json:"account_type" url:"account_type"`
	AccountNumber     string `json:"account_number" url:"account_number"`
	AccountHolderName string `json:"account_holder_name" url:"account_holder_name"`
}

// CreateTenantParams are the parameters for creating a tenant.
type CreateTenantParams struct {
	Name string `url:"name,omitempty"`
	// PlatformFeeRate is the platform's fee rate as a decimal string.
	PlatformFeeRate       string             `url:"platform_fee_rate,omitempty"`
	MinimumTransferAmount int64              `url:"minimum_transfer_amount,omitempty"`
	BankAccount           *TenantBankAccount `url:"bank_account,omitempty"`
	Metadata              Metadata           `url:"metadata,omitempty"`
}

// UpdateTenantParams are the parameters for updating a tenant. Zero
// fields are left unchanged.
type UpdateTenantParams struct {
	Name                  string             `url:"name,omitempty"`
	PlatformFeeRate       string             `url:"platform_fee_rate,omitempty"`
	MinimumTransferAmount int64              `url:"minimum_transfer_amount,omitempty"`
	BankAccount           *TenantBankAccount `url:"bank_account,omitempty"`
	Metadata              Metadata           `url:"metadata,omitempty"`
}

// ApplicationURLs is a set of time-limited onboarding URLs for a tenant.
type ApplicationURLs struct {
	// URL is where the tenant completes their merchant application.
	URL string `json:"url,omitempty"`
	// Expires is the time the URL stops working, as a Unix timestamp.
	Expires int64 `json:"expires,omitempty"`
}

// TenantService manages platform sub-merchants (Platform API).
type TenantService struct {
	client *api.Client
}

// Create creates a tenant.
func (s *TenantService) Create(ctx context.Context, params CreateTenantParams) (*Tenant, error) {
	var tenant Tenant
	if err := s.client.Post(ctx, "/tenants", params, &tenant); err != nil {
		return nil, wrapError(err)
	}
	return &tenant, nil
}

// Retrieve fetches a tenant by ID.
func (s *TenantService) Retrieve(ctx context.Context, id string) (*Tenant, error) {
	var tenant Tenant
	path := fmt.Sprintf("/tenants/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &tenant); err != nil {
		return nil, wrapError(err)
	}
	return &tenant, nil
}

// Update changes a tenant's details.
func (s *TenantService) Update(ctx context.Context, id string, params UpdateTenantParams) (*Tenant, error) {
	var tenant Tenant
	path := fmt.Sprintf("/tenants/%s", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &tenant); err != nil {
		return nil, wrapError(err)
	}
	return &tenant, nil
}

// Delete removes a tenant.
func (s *TenantService) Delete(ctx context.Context, id string) (*Deleted, error) {
	var deleted Deleted
	path := fmt.Sprintf("/tenants/%s", url.PathEscape(id))
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, wrapError(err)
	}
	return &deleted, nil
}

// List returns tenants, newest first.
func (s *TenantService) List(ctx context.Context, params ListParams) (*ListResponse[Tenant], error) {
	var list ListResponse[Tenant]
	if err := s.client.GetWithParams(ctx, "/tenants", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}

// CreateApplicationURLs creates time-limited onboarding URLs for a
// tenant.
func (s *TenantService) CreateApplicationURLs(ctx context.Context, id string) (*ApplicationURLs, error) {
	var urls ApplicationURLs
	path := fmt.Sprintf("/tenants/%s/application_urls", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &urls); err != nil {
		return nil, wrapError(err)
	}
	return &urls, nil
}
