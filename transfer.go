package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Transfer is a payout of settled funds to the account's bank. Transfers
// are created by PAY.JP on the settlement schedule and are read-only.
type Transfer struct {
	// ID is the transfer identifier, prefixed with "tr_".
	ID string `json:"id"`
	// Object is always "transfer".
	Object string `json:"object"`
	// LiveMode reports whether the transfer was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Amount transferred, in the smallest currency unit.
	Amount int64 `json:"amount"`
	// Currency is the three-letter ISO code, currently always "jpy".
	Currency string `json:"currency"`
	// Status is "pending", "paid", "failed", "stop" or "carried_forward".
	Status string `json:"status"`
	// Summary aggregates the charges and refunds settled by this transfer.
	Summary TransferSummary `json:"summary"`
	// ScheduledDate is the planned payout date as a Unix timestamp.
	ScheduledDate int64 `json:"scheduled_date,omitempty"`
	// Bank is the destination bank account.
	Bank *BankInfo `json:"bank,omitempty"`
	// StatementDescriptor appears on the bank statement.
	StatementDescriptor string `json:"statement_descriptor,omitempty"`
	// Term is the ID of the settlement term this transfer covers.
	Term string `json:"term,omitempty"`
}

// TransferSummary aggregates the activity settled by a transfer.
type TransferSummary struct {
	ChargeAmount int64 `json:"charge_amount"`
	ChargeCount  int64 `json:"charge_count"`
	ChargeFee    int64 `json:"charge_fee"`
	RefundAmount int64 `json:"refund_amount"`
	RefundCount  int64 `json:"refund_count"`
}

// BankInfo is a destination bank account.
type BankInfo struct {
	BankCode          string `json:"bank_code"`
	BranchCode        string `json:"branch_code"`
	AccountType       string `json:"account_type"`
	AccountNumber     string `json:"account_number"`
	AccountHolderName string `json:"account_holder_name"`
}

// TransferService provides read access to bank transfers.
type TransferService struct {
	client *api.Client
}

// Retrieve fetches a transfer by ID.
func (s *TransferService) Retrieve(ctx context.Context, id string) (*Transfer, error) {
	var transfer Transfer
	path := fmt.Sprintf("/transfers/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &transfer); err != nil {
		return nil, wrapError(err)
	}
	return &transfer, nil
}

// List returns transfers, newest first.
func (s *TransferService) List(ctx context.Context, params ListParams) (*ListResponse[Transfer], error) {
	var list ListResponse[Transfer]
	if err := s.client.GetWithParams(ctx, "/transfers", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
