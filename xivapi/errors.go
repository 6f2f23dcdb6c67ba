package xivapi

import (
	"fmt"
)

// TransportError reports a failure to complete the round trip: connection
// refused, timeout, TLS failure, or a cancelled context.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("xivapi: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	// Body holds at most maxErrorBody bytes of the response.
	Body string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("xivapi: unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("xivapi: unexpected status code: %d: %s", e.StatusCode, e.Body)
}

// ParseError means the response body was not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xivapi: parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaMismatchError means the body was valid JSON but did not fit the model:
// a required field was missing or null, or a value had the wrong type or range.
// Path uses wire names, e.g. "Character.ID" or "Results[0].Server".
type SchemaMismatchError struct {
	Path   string
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("xivapi: schema mismatch: %s", e.Reason)
	}
	return fmt.Sprintf("xivapi: schema mismatch at %s: %s", e.Path, e.Reason)
}

// InvalidSelectorError is returned before any request when a data selector is
// outside the known set.
type InvalidSelectorError struct {
	Value string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("xivapi: invalid data selector %q", e.Value)
}

// QueryError is returned before any request when query parameters are invalid.
type QueryError struct {
	Field  string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("xivapi: invalid query %s: %s", e.Field, e.Reason)
}
