package api

import (
	"context"
	"net/http"
)

// Get issues a GET request without query parameters and decodes the JSON
// response into result.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

// GetWithParams issues a GET request with params encoded as the query
// string.
func (c *Client) GetWithParams(ctx context.Context, path string, params, result interface{}) error {
	values, err := encodeParams(params)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodGet, path, values, result)
}

// Post issues a POST request with params form-encoded as the body. A nil
// params sends an empty body.
func (c *Client) Post(ctx context.Context, path string, params, result interface{}) error {
	values, err := encodeParams(params)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, values, result)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, result)
}
