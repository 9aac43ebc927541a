package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// PlanInterval is the billing cycle of a plan.
type PlanInterval string

const (
	PlanIntervalMonth PlanInterval = "month"
	PlanIntervalYear  PlanInterval = "year"
)

// Plan is a recurring billing plan that customers subscribe to.
type Plan struct {
	// ID is the plan identifier.
	ID string `json:"id"`
	// Object is always "plan".
	Object string `json:"object"`
	// LiveMode reports whether the plan was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Amount billed per interval, in the smallest currency unit.
	Amount int64 `json:"amount"`
	// Currency is the three-letter ISO code, currently always "jpy".
	Currency string `json:"currency"`
	// Interval is the billing cycle, monthly or yearly.
	Interval PlanInterval `json:"interval"`
	// Name is the plan's display name.
	Name string `json:"name,omitempty"`
	// TrialDays is the free trial length granted to new subscriptions.
	TrialDays int64 `json:"trial_days,omitempty"`
	// BillingDay fixes the day of month to bill on, 1 through 31.
	BillingDay int `json:"billing_day,omitempty"`
	// Metadata holds arbitrary key-value pairs attached to the plan.
	Metadata Metadata `json:"metadata,omitempty"`
}

// CreatePlanParams are the parameters for creating a plan.
type CreatePlanParams struct {
	// Amount billed per interval, in the smallest currency unit.
	Amount int64 `url:"amount"`
	// Currency is the three-letter ISO code, currently always "jpy".
	Currency string `url:"currency"`
	// Interval is the billing cycle, monthly or yearly.
	Interval PlanInterval `url:"interval"`
	// ID assigns a custom identifier instead of a generated one.
	ID string `url:"id,omitempty"`
	// Name is the plan's display name.
	Name string `url:"name,omitempty"`
	// TrialDays grants new subscriptions a free trial of this many days.
	TrialDays int64 `url:"trial_days,omitempty"`
	// BillingDay fixes the day of month to bill on, 1 through 31. Only
	// valid for monthly plans.
	BillingDay int `url:"billing_day,omitempty"`
	// Metadata holds arbitrary key-value pairs to attach to the plan.
	Metadata Metadata `url:"metadata,omitempty"`
}

// UpdatePlanParams are the parameters for updating a plan. Zero fields
// are left unchanged.
type UpdatePlanParams struct {
	Name       string   `url:"name,omitempty"`
	TrialDays  int64    `url:"trial_days,omitempty"`
	BillingDay int      `url:"billing_day,omitempty"`
	Metadata   Metadata `url:"metadata,omitempty"`
}

// PlanService manages recurring billing plans.
type PlanService struct {
	client *api.Client
}

// Create creates a plan.
func (s *PlanService) Create(ctx context.Context, params CreatePlanParams) (*Plan, error) {
	var plan Plan
	if err := s.client.Post(ctx, "/plans", params, &plan); err != nil {
		return nil, wrapError(err)
	}
	return &plan, nil
}

// Retrieve fetches a plan by ID.
func (s *PlanService) Retrieve(ctx context.Context, id string) (*Plan, error) {
	var plan Plan
	path := fmt.Sprintf("/plans/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &plan); err != nil {
		return nil, wrapError(err)
	}
	return &plan, nil
}

// Update changes a plan's name, trial or metadata. The amount and
// interval of an existing plan cannot be changed.
func (s *PlanService) Update(ctx context.Context, id string, params UpdatePlanParams) (*Plan, error) {
	var plan Plan
	path := fmt.Sprintf("/plans/%s", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &plan); err != nil {
		return nil, wrapError(err)
	}
	return &plan, nil
}

// Delete removes a plan. Existing subscriptions to the plan are not
// affected.
func (s *PlanService) Delete(ctx context.Context, id string) (*Deleted, error) {
	var deleted Deleted
	path := fmt.Sprintf("/plans/%s", url.PathEscape(id))
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, wrapError(err)
	}
	return &deleted, nil
}

// List returns plans, newest first.
func (s *PlanService) List(ctx context.Context, params ListParams) (*ListResponse[Plan], error) {
	var list ListResponse[Plan]
	if err := s.client.GetWithParams(ctx, "/plans", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
