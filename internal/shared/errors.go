package shared

import "fmt"

var (
	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrUnknownGenre    = fmt.Errorf("unknown genre")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Provider and transport errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTransport          = fmt.Errorf("playlist service unreachable")

	// Playback errors
	ErrNoPlayer  = fmt.Errorf("no player attached")
	ErrExhausted = fmt.Errorf("all candidates exhausted")
)
