package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// TenantTransfer is a payout of settled funds to a tenant's bank
// (Platform API). Tenant transfers are created by PAY.JP and are
// read-only.
type TenantTransfer struct {
	// ID is the tenant transfer identifier, prefixed with "ten_tr_".
	ID string `json:"id"`
	// Object is always "tenant_transfer".
	Object string `json:"object"`
	// LiveMode reports whether the transfer was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Tenant is the ID of the tenant being paid out.
	Tenant string `json:"tenant"`
	// Amount transferred, in the smallest currency unit.
	Amount int64 `json:"amount"`
	// Currency is the three-letter ISO code, currently always "jpy".
	Currency string `json:"currency"`
	// Status is "pending", "paid", "failed", "stop" or "carried_forward".
	Status string `json:"status"`
	// Summary aggregates the tenant activity settled by this transfer.
	Summary TenantTransferSummary `json:"summary"`
	// ScheduledDate is the planned payout date as a Unix timestamp.
	ScheduledDate int64 `json:"scheduled_date,omitempty"`
	// Term is the ID of the settlement term this transfer covers.
	Term string `json:"term,omitempty"`
}

// TenantTransferSummary aggregates the activity settled by a tenant
// transfer, including the platform's fee share.
type TenantTransferSummary struct {
	ChargeAmount int64 `json:"charge_amount"`
	ChargeCount  int64 `json:"charge_count"`
	ChargeFee    int64 `json:"charge_fee"`
	PlatformFee  int64 `json:"platform_fee"`
	RefundAmount int64 `json:"refund_amount"`
	RefundCount  int64 `json:"refund_count"`
}

// TenantTransferService provides read access to per-tenant transfers
// (Platform API).
type TenantTransferService struct {
	client *api.Client
}

// Retrieve fetches a tenant transfer by ID.
func (s *TenantTransferService) Retrieve(ctx context.Context, id string) (*TenantTransfer, error) {
	var transfer TenantTransfer
	path := fmt.Sprintf("/tenant_transfers/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &transfer); err != nil {
		return nil, wrapError(err)
	}
	return &transfer, nil
}

// List returns tenant transfers, newest first.
func (s *TenantTransferService) List(ctx context.Context, params ListParams) (*ListResponse[TenantTransfer], error) {
	var list ListResponse[TenantTransfer]
	if err := s.client.GetWithParams(ctx, "/tenant_transfers", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
