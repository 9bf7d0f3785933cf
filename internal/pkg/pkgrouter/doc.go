// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter: route groups for
// nested resources, Param middleware that resolves a path id before the
// handler runs, JSON encoding of handler results, error-to-status mapping,
// logging, recovery, metrics and correlation ID propagation.
package pkgrouter
