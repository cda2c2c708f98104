package adapter

import "errors"

var (
	// ErrInvalidURL is returned for URLs without an http(s) scheme or host.
	ErrInvalidURL = errors.New("invalid subscription url")
	// ErrUnexpectedStatus wraps every non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	ErrUnauthorized = errors.New("provider rejected credentials")
	ErrNotFound     = errors.New("subscription not found")
)
