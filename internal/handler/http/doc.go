// Package http implements the HTTP transport layer of the service.
//
// It wires the chi router, the subscription and version handlers and the
// middleware around them: path token check, request tracing, access
// logging and response compression. Handlers delegate to the service layer
// and only translate its errors into status codes and plain-text bodies.
package http
