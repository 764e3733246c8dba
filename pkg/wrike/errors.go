package wrike

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to match them through wrapping.
var (
	// ErrKeyMissing is returned when a record lacks a field the client needs,
	// such as a record without an "id" or a custom status id that is not in
	// the custom status cache.
	ErrKeyMissing = errors.New("required key missing from record")

	// ErrNotFound is returned by lookups that scan cached data and find nothing.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidIDType is returned for an identifier type outside the known set.
	ErrInvalidIDType = errors.New("invalid identifier type")

	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("wrike transport error")
)

// Error describes a failed client operation.
type Error struct {
	// Op is the client operation, e.g. "Contacts" or "ConvertLegacyIDs".
	Op string
	// Err is the underlying error.
	Err error
	// Msg is optional extra context.
	Msg string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TransportError is a network, HTTP or decoding failure reported by a
// Transport. The client never retries or translates it.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int    // zero when no response was received
	Body       string // response body for non-2xx statuses
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err == nil:
		return fmt.Sprintf("%s %s: API returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as a match so callers do not need errors.As for the
// common case.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// StatusResolutionError is returned when a folder's project refers to a
// custom status that cannot be resolved through the custom status cache.
// A stale cache is the usual cause; Client.Reset and retry the extraction.
type StatusResolutionError struct {
	CustomStatusID string
	Err            error
}

func (e *StatusResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve custom status %q: %v", e.CustomStatusID, e.Err)
}

func (e *StatusResolutionError) Unwrap() error {
	return e.Err
}
