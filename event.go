package payjp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// EventType identifies what happened to which resource, in the form
// "resource.action". Events with types not listed here decode without
// loss; compare against the raw string.
type EventType string

const (
	EventTypeChargeCreated   EventType = "charge.created"
	EventTypeChargeUpdated   EventType = "charge.updated"
	EventTypeChargeSucceeded EventType = "charge.succeeded"
	EventTypeChargeFailed    EventType = "charge.failed"
	EventTypeChargeCaptured  EventType = "charge.captured"
	EventTypeChargeRefunded  EventType = "charge.refunded"

	EventTypeCustomerCreated     EventType = "customer.created"
	EventTypeCustomerUpdated     EventType = "customer.updated"
	EventTypeCustomerDeleted     EventType = "customer.deleted"
	EventTypeCustomerCardCreated EventType = "customer.card.created"
	EventTypeCustomerCardUpdated EventType = "customer.card.updated"
	EventTypeCustomerCardDeleted EventType = "customer.card.deleted"

	EventTypePlanCreated EventType = "plan.created"
	EventTypePlanUpdated EventType = "plan.updated"
	EventTypePlanDeleted EventType = "plan.deleted"

	EventTypeSubscriptionCreated  EventType = "subscription.created"
	EventTypeSubscriptionUpdated  EventType = "subscription.updated"
	EventTypeSubscriptionDeleted  EventType = "subscription.deleted"
	EventTypeSubscriptionPaused   EventType = "subscription.paused"
	EventTypeSubscriptionResumed  EventType = "subscription.resumed"
	EventTypeSubscriptionCanceled EventType = "subscription.canceled"
	EventTypeSubscriptionRenewed  EventType = "subscription.renewed"

	EventTypeTransferCreated EventType = "transfer.created"
)

// Event records a change to a resource on the account. The event log is
// append-only and read-only.
type Event struct {
	// ID is the event identifier, prefixed with "evnt_".
	ID string `json:"id"`
	// Object is always "event".
	Object string `json:"object"`
	// LiveMode reports whether the event occurred in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the time the event occurred as a Unix timestamp.
	Created int64 `json:"created"`
	// Type identifies what happened.
	Type EventType `json:"type"`
	// Data carries the affected resource.
	Data EventData `json:"data"`
	// PendingWebhooks is the number of webhook deliveries still queued
	// for this event.
	PendingWebhooks int64 `json:"pending_webhooks,omitempty"`
}

// EventData carries the resource an event refers to. Object holds the
// resource as raw JSON since its shape depends on the event type; decode
// it into the matching struct:
//
//	if event.Type == payjp.EventTypeChargeSucceeded {
//	    var charge payjp.Charge
//	    if err := json.Unmarshal(event.Data.Object, &charge); err != nil {
//	        return err
//	    }
//	}
type EventData struct {
	// PreviousAttributes holds the changed fields' prior values for
	// update events.
	PreviousAttributes json.RawMessage `json:"previous_attributes,omitempty"`
	// Object is the affected resource as raw JSON.
	Object json.RawMessage `json:"object"`
}

// EventService provides read access to the account's event log.
type EventService struct {
	client *api.Client
}

// Retrieve fetches an event by ID.
func (s *EventService) Retrieve(ctx context.Context, id string) (*Event, error) {
	var event Event
	path := fmt.Sprintf("/events/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &event); err != nil {
		return nil, wrapError(err)
	}
	return &event, nil
}

// List returns events, newest first.
func (s *EventService) List(ctx context.Context, params ListParams) (*ListResponse[Event], error) {
	var list ListResponse[Event]
	if err := s.client.GetWithParams(ctx, "/events", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}
