// Package server runs the HTTP server: startup, signal handling and
// graceful shutdown with a bounded drain period for in-flight requests.
package server
