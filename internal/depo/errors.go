package depo

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a request rejected before any upstream call.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// UnavailableError reports that the upstream endpoint could not be reached,
// including timeouts and cancelled requests.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("online.depo.lv is unreachable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// UpstreamError reports a reply the upstream delivered but that signals
// failure: a GraphQL error payload, a non-2xx status or an undecodable body.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return "upstream search failed: " + e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
