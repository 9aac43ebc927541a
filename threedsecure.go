package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// ThreeDSecureStatus is the state of a standalone 3-D Secure request.
type ThreeDSecureStatus string

const (
	ThreeDSecureStatusInProgress ThreeDSecureStatus = "in_progress"
	ThreeDSecureStatusVerified   ThreeDSecureStatus = "verified"
	ThreeDSecureStatusAttempted  ThreeDSecureStatus = "attempted"
	ThreeDSecureStatusFailed     ThreeDSecureStatus = "failed"
	ThreeDSecureStatusError      ThreeDSecureStatus = "error"
	ThreeDSecureStatusAborted    ThreeDSecureStatus = "aborted"
)

// ThreeDSecureRequest is a standalone 3-D Secure verification for a saved
// card or a charge. The cardholder completes authentication at
// AuthenticationURL.
type ThreeDSecureRequest struct {
	// ID is the request identifier, prefixed with "tdsr_".
	ID string `json:"id"`
	// Object is always "three_d_secure_request".
	Object string `json:"object"`
	// LiveMode reports whether the request was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// ResourceType is "card" or "charge".
	ResourceType string `json:"resource_type,omitempty"`
	// ResourceID is the ID of the card or charge being verified.
	ResourceID string `json:"resource_id,omitempty"`
	// Status is the verification state. It may be empty immediately after
	// creation.
	Status ThreeDSecureStatus `json:"status,omitempty"`
	// AuthenticationURL is where the cardholder completes verification.
	AuthenticationURL string `json:"authentication_url,omitempty"`
	// Tenant is the tenant ID for platform requests.
	Tenant string `json:"tenant,omitempty"`
	// State is the opaque state parameter echoed to the callback.
	State string `json:"state,omitempty"`
	// Result carries the authentication outcome once verification has
	// finished.
	Result *ThreeDSecureResult `json:"result,omitempty"`
}

// ThreeDSecureResult is the outcome of a 3-D Secure authentication.
type ThreeDSecureResult struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	// ECI is the Electronic Commerce Indicator reported by the issuer.
	ECI string `json:"eci,omitempty"`
}

// CreateThreeDSecureRequestParams are the parameters for starting a
// standalone 3-D Secure verification.
type CreateThreeDSecureRequestParams struct {
	// ResourceID is a customer card ID ("car_...") or a charge ID
	// ("ch_..."). Token IDs are not accepted.
	ResourceID string `url:"resource_id"`
	// Tenant is the tenant to verify on behalf of (Platform API).
	Tenant string `url:"tenant,omitempty"`
}

// ThreeDSecureRequestService manages standalone 3-D Secure verifications.
type ThreeDSecureRequestService struct {
	client *api.Client
}

// Create starts a 3-D Secure verification for a card or charge.
func (s *ThreeDSecureRequestService) Create(ctx context.Context, params CreateThreeDSecureRequestParams) (*ThreeDSecureRequest, error) {
	var req ThreeDSecureRequest
	if err := s.client.Post(ctx, "/three_d_secure_requests", params, &req); err != nil {
		return nil, wrapError(err)
	}
	return &req, nil
}

// Retrieve fetches a 3-D Secure request by ID.
func (s *ThreeDSecureRequestService) Retrieve(ctx context.Context, id string) (*ThreeDSecureRequest, error) {
	var req ThreeDSecureRequest
	path := fmt.Sprintf("/three_d_secure_requests/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &req); err != nil {
		return nil, wrapError(err)
	}
	return &req, nil
}

// List returns 3-D Secure requests, newest first.
func (s *ThreeDSecureRequestService) List(ctx context.Context, params ListParams) (*ListResponse[ThreeDSecureRequest], error) {
	var list ListResponse[ThreeDSecureRequest]
	if err := s.client.GetWithParams(ctx, "/three_d_secure_requests", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
