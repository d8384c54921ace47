package appointment

import (
	"errors"

	"github.com/BruksfildServices01/coldtech-agenda/internal/httperr"
)

var (
	// ErrNotFound is returned by a Repository when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrRemoteUnavailable wraps transport and connectivity failures.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrRemoteRejected wraps errors reported by the store itself
	// (constraint violations, schema errors).
	ErrRemoteRejected = errors.New("remote store rejected the request")
)

// Surfaced to callers, never answered by a fallback.
var (
	ErrServiceNotFound = httperr.ErrBusiness("service_not_found")
	ErrMissingID       = httperr.ErrBusiness("missing_appointment_id")
)

// Kind names the failure class of err for logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRemoteRejected):
		return "remote_rejected"
	case errors.Is(err, ErrServiceNotFound):
		return "unresolved_reference"
	case errors.Is(err, ErrMissingID):
		return "missing_identifier"
	default:
		return "remote_unreachable"
	}
}
