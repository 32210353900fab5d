package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks responses that carried an authentication-failure
// status. By the time a caller sees it, the transport has already torn the
// session down. Match with errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a server rejection (HTTP status outside the success range).
// Message holds the server-provided detail verbatim when one was present;
// otherwise it is empty and the stores substitute a per-action fallback.
type Error struct {
	Status  int
	Message string

	err error // optional sentinel, e.g. ErrUnauthorized
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.Status)
}

func (e *Error) Unwrap() error {
	return e.err
}
