package gdocs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means no service account file is configured.
	ErrNotConfigured = errors.New("google docs not configured")
	// ErrNoExistingDocument means append mode has no target document id.
	ErrNoExistingDocument = errors.New("no existing document id configured")
)

// InitError is returned when credentials are configured but the clients
// cannot be built from them.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("google services init: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
