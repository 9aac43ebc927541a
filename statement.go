package payjp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/payjp/client-go/internal/api"
)

// Statement is a settled transaction report. Statements are generated by
// PAY.JP and are read-only; downloadable renditions are obtained through
// IssueURLs.
type Statement struct {
	// ID is the statement identifier, prefixed with "st_".
	ID string `json:"id"`
	// Object is always "statement".
	Object string `json:"object"`
	// LiveMode reports whether the statement was created in live mode.
	LiveMode bool `json:"livemode"`
	// Created is the creation time as a Unix timestamp.
	Created int64 `json:"created"`

	Title string `json:"title,omitempty"`
	// Tenant is the tenant ID for platform statements.
	Tenant string `json:"tenant,omitempty"`
	// Term is the ID of the settlement term this statement covers.
	Term string `json:"term,omitempty"`
	// BalanceID is the ID of the balance this statement belongs to.
	BalanceID string `json:"balance_id,omitempty"`
	// StatementType distinguishes sales statements from fee statements.
	StatementType string `json:"statement_type,omitempty"`
	// Updated is the last modification time as a Unix timestamp.
	Updated int64 `json:"updated,omitempty"`
}

// StatementURLs is a set of pre-signed download URLs for a statement.
type StatementURLs struct {
	// Object is always "statement_urls".
	Object string `json:"object"`
	// Expires is the time the URLs stop working, as a Unix timestamp.
	Expires int64 `json:"expires"`
	// URL is the download location.
	URL string `json:"url,omitempty"`
}

// StatementService provides read access to statements.
type StatementService struct {
	client *api.Client
}

// Retrieve fetches a statement by ID.
func (s *StatementService) Retrieve(ctx context.Context, id string) (*Statement, error) {
	var statement Statement
	path := fmt.Sprintf("/statements/%s", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &statement); err != nil {
		return nil, wrapError(err)
	}
	return &statement, nil
}

// List returns statements, newest first.
func (s *StatementService) List(ctx context.Context, params ListParams) (*ListResponse[Statement], error) {
	var list ListResponse[Statement]
	if err := s.client.GetWithParams(ctx, "/statements", params, &list); err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}

// IssueURLs creates time-limited download URLs for a statement.
func (s *StatementService) IssueURLs(ctx context.Context, id string) (*StatementURLs, error) {
	var urls StatementURLs
	path := fmt.Sprintf("/statements/%s/statement_urls", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &urls); err != nil {
		return nil, wrapError(err)
	}
	return &urls, nil
}
