package api

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// encodeParams converts a tagged parameter struct into url.Values. Nested
// structs flatten with bracket notation, so a Number field inside a field
// tagged `url:"card"` encodes as card[number]. The same values serve as a
// GET query string or a form-urlencoded POST body.
func encodeParams(params interface{}) (url.Values, error) {
	if params == nil {
		return nil, nil
	}
	values, err := query.Values(params)
	if err != nil {
		return nil, &EncodingError{Op: "encode request parameters", Err: err}
	}
	return values, nil
}
