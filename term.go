package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Term is a settlement aggregation period. Note that terms carry no
// created timestamp; StartAt and EndAt bound the period instead.
type Term struct {
	// ID is the term identifier, prefixed with "tm_".
	ID string `json:"id"`
	// Object is always "term".
	Object string `json:"object"`
	// LiveMode reports whether the term is in live mode.
	LiveMode bool `json:"livemode"`
	// StartAt and EndAt bound the period as Unix timestamps.
	StartAt int64 `json:"start_at,omitempty"`
	EndAt   int64 `json:"end_at,omitempty"`
	// ChargeCount and RefundCount aggregate the period's activity.
	ChargeCount int64 `json:"charge_count"`
	RefundCount int64 `json:"refund_count"`
	// DisputeCount is the number of disputes raised during the period.
	DisputeCount int64 `json:"dispute_count,omitempty"`
}

// TermService provides read access to settlement terms.
type TermService struct {
	client *api.Client
}

// Retrieve fetches a term by ID.
func (s *TermService) Retrieve(ctx context.Context, id string) (*Term, error) {
	var term Term
	path := fmt.Sprintf("/terms/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &term); err != nil {
		return nil, wrapError(err)
	}
	return &term, nil
}

// List returns terms, newest first.
func (s *TermService) List(ctx context.Context, params ListParams) (*ListResponse[Term], error) {
	var list ListResponse[Term]
	if err := s.client.GetWithParams(ctx, "/terms", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
