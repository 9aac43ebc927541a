package payjp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
)

// Metadata is a set of key-value pairs that can be attached to most
// PAY.JP resources for storing additional structured information.
type Metadata map[string]string

// EncodeValues encodes metadata as form fields of the shape
// metadata[key]=value. It implements the query.Encoder interface used by
// go-querystring.
func (m Metadata) EncodeValues(key string, v *url.Values) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.Set(fmt.Sprintf("%s[%s]", key, k), m[k])
	}
	return nil
}

// ListParams are the pagination parameters accepted by all list
// operations. The zero value requests the API defaults.
type ListParams struct {
	// Limit is the maximum number of objects to return, between 1 and 100.
	Limit int64 `url:"limit,omitempty"`
	// Offset is the number of objects to skip.
	Offset int64 `url:"offset,omitempty"`
	// Since restricts the list to objects created at or after this Unix
	// timestamp.
	Since int64 `url:"since,omitempty"`
	// Until restricts the list to objects created at or before this Unix
	// timestamp.
	Until int64 `url:"until,omitempty"`
}

// ListResponse is the envelope returned by all list operations.
type ListResponse[T any] struct {
	// Object is always "list".
	Object string `json:"object"`
	// Data holds the objects in this page.
	Data []T `json:"data"`
	// HasMore reports whether further pages exist beyond this one.
	HasMore bool `json:"has_more"`
	// URL is the endpoint path that produced this list.
	URL string `json:"url"`
	// Count is the number of objects in Data.
	Count int64 `json:"count"`
}

// CardOrID holds a value the API returns either as a full card object or
// as a bare card ID string, depending on the endpoint. Exactly one of the
// fields is set.
type CardOrID struct {
	Card *Card
	ID   string
}

// CardID returns the card's ID in either representation.
func (c *CardOrID) CardID() string {
	if c.Card != nil {
		return c.Card.ID
	}
	return c.ID
}

// UnmarshalJSON decodes either a card object or a card ID string.
func (c *CardOrID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = CardOrID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	c.Card = &Card{}
	return json.Unmarshal(data, c.Card)
}

// MarshalJSON encodes the card object, the ID string, or null.
func (c *CardOrID) MarshalJSON() ([]byte, error) {
	if c.Card != nil {
		return json.Marshal(c.Card)
	}
	if c.ID != "" {
		return json.Marshal(c.ID)
	}
	return []byte("null"), nil
}

// Deleted is the acknowledgement returned when a resource is deleted.
type Deleted struct {
	// ID of the deleted resource.
	ID string `json:"id"`
	// Deleted is true when the deletion succeeded.
	Deleted bool `json:"deleted"`
	// LiveMode reports whether the resource existed in live mode.
	LiveMode bool `json:"livemode"`
}

// Bool returns a pointer to b, for use in optional request parameters.
func Bool(b bool) *bool {
	return &b
}

// Int64 returns a pointer to n, for use in optional request parameters.
func Int64(n int64) *int64 {
	return &n
}

// String returns a pointer to s, for use in optional request parameters.
func String(s string) *string {
	return &s
}
