package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPaused   SubscriptionStatus = "paused"
)

// Subscription bills a customer on a plan's cycle until it is paused,
// canceled or deleted.
type Subscription struct {
	// ID is the subscription identifier, prefixed with "sub_".
	ID string `json:"id"`
	// Object is always "subscription".
	Object string `json:"object"`
	// LiveMode reports whether the subscription was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`
	// Customer is the ID of the subscribed customer.
	Customer string `json:"customer"`
	// Plan is the plan being billed.
	Plan Plan `json:"plan"`
	// Status is the subscription's lifecycle state.
	Status SubscriptionStatus `json:"status"`
	// Start is the time the subscription started.
	Start int64 `json:"start"`
	// TrialEnd is the time the free trial ends, zero without a trial.
	TrialEnd int64 `json:"trial_end,omitempty"`
	// PausedAt, CanceledAt and ResumedAt record lifecycle transitions.
	PausedAt   int64 `json:"paused_at,omitempty"`
	CanceledAt int64 `json:"canceled_at,omitempty"`
	ResumedAt  int64 `json:"resumed_at,omitempty"`
	// CurrentPeriodStart and CurrentPeriodEnd bound the period currently
	// being billed.
	CurrentPeriodStart int64 `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   int64 `json:"current_period_end,omitempty"`
	// Prorate reports whether proration is enabled.
	Prorate *bool `json:"prorate,omitempty"`
	// Metadata holds arbitrary key-value pairs attached to the
	// subscription.
	Metadata Metadata `json:"metadata,omitempty"`
}

// CreateSubscriptionParams are the parameters for subscribing a customer
// to a plan.
type CreateSubscriptionParams struct {
	// Customer is the ID of the customer to subscribe.
	Customer string `url:"customer"`
	// Plan is the ID of the plan to subscribe to.
	Plan string `url:"plan"`
	// TrialEnd overrides the plan's trial with an end time of its own,
	// as a Unix timestamp.
	TrialEnd int64 `url:"trial_end,omitempty"`
	// Prorate enables prorated billing for the first period.
	Prorate *bool `url:"prorate,omitempty"`
	// Metadata holds arbitrary key-value pairs to attach.
	Metadata Metadata `url:"metadata,omitempty"`
}

// UpdateSubscriptionParams are the parameters for updating a
// subscription. Zero fields are left unchanged.
type UpdateSubscriptionParams struct {
	// Plan switches the subscription to another plan.
	Plan     string   `url:"plan,omitempty"`
	TrialEnd int64    `url:"trial_end,omitempty"`
	Prorate  *bool    `url:"prorate,omitempty"`
	Metadata Metadata `url:"metadata,omitempty"`
}

// ResumeSubscriptionParams are the parameters for resuming a paused
// subscription.
type ResumeSubscriptionParams struct {
	// Prorate charges a prorated amount for the remainder of the current
	// period.
	Prorate *bool `url:"prorate,omitempty"`
}

// SubscriptionService manages customer subscriptions to plans.
type SubscriptionService struct {
	client *api.Client
}

// Create subscribes a customer to a plan. The customer must have a saved
// card unless the plan grants a trial.
func (s *SubscriptionService) Create(ctx context.Context, params CreateSubscriptionParams) (*Subscription, error) {
	var sub Subscription
	if err := s.client.Post(ctx, "/subscriptions", params, &sub); err != nil {
		return nil, wrapError(err)
	}
	return &sub, nil
}

// Retrieve fetches a subscription by ID.
func (s *SubscriptionService) Retrieve(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/subscriptions/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &sub); err != nil {
		return nil, wrapError(err)
	}
	return &sub, nil
}

// Update changes a subscription's plan, trial or metadata.
func (s *SubscriptionService) Update(ctx context.Context, id string, params UpdateSubscriptionParams) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/subscriptions/%s", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &sub); err != nil {
		return nil, wrapError(err)
	}
	return &sub, nil
}

// Pause stops billing until the subscription is resumed.
func (s *SubscriptionService) Pause(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/subscriptions/%s/pause", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &sub); err != nil {
		return nil, wrapError(err)
	}
	return &sub, nil
}

// Resume restarts billing on a paused subscription.
func (s *SubscriptionService) Resume(ctx context.Context, id string, params ResumeSubscriptionParams) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/subscriptions/%s/resume", url.PathEscape(id))
	if err := s.client.Post(ctx, path, params, &sub); err != nil {
		return nil, wrapError(err)
	}
	return &sub, nil
}

// Cancel stops the subscription at the end of the current period. A
// canceled subscription can still be resumed until the period ends.
func (s *SubscriptionService) Cancel(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/subscriptions/%s/cancel", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &sub); err != nil {
		return nil, wrapError(err)
	}
	return &sub, nil
}

// Delete removes a subscription immediately, without waiting for the
// period to end.
func (s *SubscriptionService) Delete(ctx context.Context, id string) (*Deleted, error) {
	var deleted Deleted
	path := fmt.Sprintf("/subscriptions/%s", url.PathEscape(id))
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, wrapError(err)
	}
	return &deleted, nil
}

// List returns subscriptions, newest first.
func (s *SubscriptionService) List(ctx context.Context, params ListParams) (*ListResponse[Subscription], error) {
	var list ListResponse[Subscription]
	if err := s.client.GetWithParams(ctx, "/subscriptions", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
