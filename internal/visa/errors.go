package visa

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means the lookup credential was never configured.
	// Checked before a request is ever dialed.
	ErrMissingAPIKey = errors.New("visa: api key not configured")

	// ErrUnauthorized is the upstream rejecting our credential (401).
	ErrUnauthorized = errors.New("visa: lookup credential rejected")

	// ErrNotFound means the upstream has no data for the pair (404).
	ErrNotFound = errors.New("visa: no data for country pair")

	// ErrInvalidPair means the upstream rejected the input codes (422).
	ErrInvalidPair = errors.New("visa: invalid country pair")

	// ErrBadPayload marks an empty or non-JSON upstream body. Such a
	// response is treated as a failed lookup and never cached.
	ErrBadPayload = errors.New("visa: malformed lookup response")
)

// StatusError covers the remaining non-2xx upstream responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("visa: lookup failed with status %d", e.Code)
}
