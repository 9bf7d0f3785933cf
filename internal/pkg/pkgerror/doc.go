// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// Stores return ErrNotFound for missing rows. The usecase layer turns that and
// every other failure into an *Error, which the router maps to a status code:
// validation and "still referenced" errors become 400, missing rows 404, store
// calls cut off by the request deadline 503, and anything unclassified 500.
package pkgerror
