package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Charge is a payment against a card. A charge is either captured
// immediately or authorized now and captured later, and can be refunded
// in part or in full.
type Charge struct {
	// ID is the charge identifier, prefixed with "ch_".
	ID string `json:"id"`
	// Object is always "charge".
	Object string `json:"object"`
	// LiveMode reports whether the charge was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Amount is the charge amount in the smallest currency unit.
	Amount int64 `json:"amount"`
	// Currency is the three-letter ISO code, currently always "jpy".
	Currency string `json:"currency"`
	// Paid reports whether the payment was authorized successfully.
	Paid bool `json:"paid"`
	// Captured reports whether the funds have been captured.
	Captured bool `json:"captured"`
	// Refunded reports whether the charge has been fully refunded.
	Refunded bool `json:"refunded"`
	// AmountRefunded is the total refunded so far.
	AmountRefunded int64 `json:"amount_refunded"`
	// CapturedAt is the capture time as a Unix timestamp, zero while the
	// charge is only authorized.
	CapturedAt int64 `json:"captured_at,omitempty"`
	// ExpiredAt is the time an uncaptured authorization expires.
	ExpiredAt int64 `json:"expired_at,omitempty"`
	// Card is the card that was charged.
	Card *Card `json:"card,omitempty"`
	// Customer is the ID of the charged customer, if one was used.
	Customer string `json:"customer,omitempty"`
	// Subscription is the ID of the originating subscription, if any.
	Subscription string `json:"subscription,omitempty"`
	// Description is free-form text attached to the charge.
	Description string `json:"description,omitempty"`
	// FailureCode and FailureMessage describe why a charge failed.
	FailureCode    string `json:"failure_code,omitempty"`
	FailureMessage string `json:"failure_message,omitempty"`
	// FeeRate is the processing fee rate as a decimal string.
	FeeRate string `json:"fee_rate,omitempty"`
	// RefundReason is the reason recorded with the most recent refund.
	RefundReason string `json:"refund_reason,omitempty"`
	// ThreeDSecureStatus is the 3-D Secure state of this charge.
	ThreeDSecureStatus string `json:"three_d_secure_status,omitempty"`
	// Tenant is the tenant ID for platform charges.
	Tenant string `json:"tenant,omitempty"`
	// PlatformFee is the platform's share of a tenant charge.
	PlatformFee int64 `json:"platform_fee,omitempty"`
	// PlatformFeeRate is the platform fee rate as a decimal string.
	PlatformFeeRate string `json:"platform_fee_rate,omitempty"`
	// TotalPlatformFee is the total platform fee for this charge.
	TotalPlatformFee int64 `json:"total_platform_fee,omitempty"`
	// Metadata holds arbitrary key-value pairs attached to the charge.
	Metadata Metadata `json:"metadata,omitempty"`
}

// CreateChargeParams are the parameters for creating a charge. Exactly one
// of Card or Customer must be set.
type CreateChargeParams struct {
	// Amount is the charge amount in the smallest currency unit.
	Amount int64 `url:"amount"`
	// Currency is the three-letter ISO code, currently always "jpy".
	Currency string `url:"currency"`
	// Card is a token ID to charge.
	Card string `url:"card,omitempty"`
	// Customer is a customer ID to charge; their default card is used.
	Customer string `url:"customer,omitempty"`
	// Description is free-form text to attach to the charge.
	Description string `url:"description,omitempty"`
	// Capture controls whether funds are captured immediately. When false
	// the charge is only authorized and must be captured later.
	Capture *bool `url:"capture,omitempty"`
	// ExpiryDays is how many days an uncaptured authorization is held,
	// between 1 and 60.
	ExpiryDays int64 `url:"expiry_days,omitempty"`
	// ThreeDSecure requests 3-D Secure verification for this charge.
	ThreeDSecure *bool `url:"three_d_secure,omitempty"`
	// Tenant is the tenant to charge on behalf of (Platform API).
	Tenant string `url:"tenant,omitempty"`
	// PlatformFee is the platform's fee for a tenant charge.
	PlatformFee int64 `url:"platform_fee,omitempty"`
	// Metadata holds arbitrary key-value pairs to attach to the charge.
	Metadata Metadata `url:"metadata,omitempty"`
}

// UpdateChargeParams are the parameters for updating a charge.
type UpdateChargeParams struct {
	Description string   `url:"description,omitempty"`
	Metadata    Metadata `url:"metadata,omitempty"`
}

// CaptureChargeParams are the parameters for capturing an authorized
// charge. A zero Amount captures the full authorized amount.
type CaptureChargeParams struct {
	Amount int64 `url:"amount,omitempty"`
}

// RefundChargeParams are the parameters for refunding a charge. A zero
// Amount refunds the full remaining amount.
type RefundChargeParams struct {
	Amount       int64  `url:"amount,omitempty"`
	RefundReason string `url:"refund_reason,omitempty"`
}

// ReauthChargeParams are the parameters for re-authorizing an expired
// authorization.
type ReauthChargeParams struct {
	ExpiryDays int64 `url:"expiry_days,omitempty"`
}

// ListChargeParams are the parameters for listing charges.
type ListChargeParams struct {
	ListParams
	// Customer restricts the list to charges on this customer.
	Customer string `url:"customer,omitempty"`
	// Subscription restricts the list to charges from this subscription.
	Subscription string `url:"subscription,omitempty"`
	// Tenant restricts the list to charges on this tenant (Platform API).
	Tenant string `url:"tenant,omitempty"`
}

// ChargeService creates and manages payments.
type ChargeService struct {
	client *api.Client
}

// Create charges a token or a customer's default card.
func (s *ChargeService) Create(ctx context.Context, params CreateChargeParams) (*Charge, error) {
	var charge Charge
	if err := s.client.Post(ctx, "/charges", params, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// Retrieve fetches a charge by ID.
func (s *ChargeService) Retrieve(ctx context.Context, id string) (*Charge, error) {
	var charge Charge
	path := fmt.Sprintf("/charges/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// Update changes a charge's description or metadata.
func (s *ChargeService) Update(ctx context.Context, id string, params UpdateChargeParams) (*Charge, error) {
	var charge Charge
	path := fmt.Sprintf("/charges/%s", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// Capture captures an authorized charge. Capturing less than the
// authorized amount releases the remainder.
func (s *ChargeService) Capture(ctx context.Context, id string, params CaptureChargeParams) (*Charge, error) {
	var charge Charge
	path := fmt.Sprintf("/charges/%s/capture", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// Refund refunds a captured charge, in part or in full.
func (s *ChargeService) Refund(ctx context.Context, id string, params RefundChargeParams) (*Charge, error) {
	var charge Charge
	path := fmt.Sprintf("/charges/%s/refund", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// Reauth re-authorizes a charge whose authorization has expired.
func (s *ChargeService) Reauth(ctx context.Context, id string, params ReauthChargeParams) (*Charge, error) {
	var charge Charge
	path := fmt.Sprintf("/charges/%s/reauth", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// TdsFinish completes 3-D Secure verification for a charge after the
// cardholder returns from the issuer's authentication page.
func (s *ChargeService) TdsFinish(ctx context.Context, id string) (*Charge, error) {
	var charge Charge
	path := fmt.Sprintf("/charges/%s/tds_finish", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &charge); err != nil {
		return nil, wrapError(err)
	}
	return &charge, nil
}

// List returns charges, newest first.
func (s *ChargeService) List(ctx context.Context, params ListChargeParams) (*ListResponse[Charge], error) {
	var list ListResponse[Charge]
	if err := s.client.GetWithParams(ctx, "/charges", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
