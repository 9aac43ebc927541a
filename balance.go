package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Balance is a snapshot of funds held for the account at a point in the
// settlement cycle. Balances are created by PAY.JP and are read-only.
type Balance struct {
	// ID is the balance identifier, prefixed with "ba_".
	ID string `json:"id"`
	// Object is always "balance".
	Object string `json:"object"`
	// LiveMode reports whether the balance was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Total is the full balance amount.
	Total int64 `json:"total"`
	// Available is the portion ready to pay out.
	Available int64 `json:"available"`
	// Pending is the portion still settling.
	Pending int64 `json:"pending"`
	// State is the settlement state, for example "collecting" or
	// "transferring".
	State string `json:"state,omitempty"`
	// Tenant is the tenant ID for platform balances.
	Tenant string `json:"tenant,omitempty"`
	// BankInfo is the payout destination for this balance.
	BankInfo *BankInfo `json:"bank_info,omitempty"`
	// ClosedAt is the time the balance was closed.
	ClosedAt int64 `json:"closed_at,omitempty"`
	// DueDate is the scheduled payout date.
	DueDate int64 `json:"due_date,omitempty"`
}

// BalanceService provides read access to balances.
type BalanceService struct {
	client *api.Client
}

// Retrieve fetches a balance by ID.
func (s *BalanceService) Retrieve(ctx context.Context, id string) (*Balance, error) {
	var balance Balance
	path := fmt.Sprintf("/balances/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &balance); err != nil {
		return nil, wrapError(err)
	}
	return &balance, nil
}

// List returns balances, newest first.
func (s *BalanceService) List(ctx context.Context, params ListParams) (*ListResponse[Balance], error) {
	var list ListResponse[Balance]
	if err := s.client.GetWithParams(ctx, "/balances", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}

// IssueURLs creates time-limited download URLs for the statements on a
// balance.
func (s *BalanceService) IssueURLs(ctx context.Context, id string) (*StatementURLs, error) {
	var urls StatementURLs
	path := fmt.Sprintf("/balances/%s/statement_urls", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &urls); err != nil {
		return nil, wrapError(err)
	}
	return &urls, nil
}
