// Package pkglog contains logging helpers used across the application.
//
// InitLogging installs a JSON slog handler as the process default. Every record
// carries the service name and, for request-scoped logs, the correlation ID
// placed in the context by the router middleware.
package pkglog
