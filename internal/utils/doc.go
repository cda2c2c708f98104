// Package utils provides small helpers shared across the service: the
// resty-based HTTP client, HTTP response writers and trace ID generation.
package utils
