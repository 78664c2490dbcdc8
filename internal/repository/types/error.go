package types

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidProviderID = errors.New("invalid provider ID")
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrInvalidTimeout    = errors.New("invalid timeout")

	// Provider errors
	ErrProviderNotFound = errors.New("provider not found")
	ErrProviderTimeout  = errors.New("provider timeout")
)

// ProviderError reports a failed upstream call. StatusCode is the HTTP
// status returned upstream, or 0 when no response was received.
type ProviderError struct {
	Provider   ProviderID
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] status %d: %s (%v)", e.Provider, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] status %d: %s", e.Provider, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
