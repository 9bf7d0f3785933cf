// Package pkguid provides helpers for generating unique identifiers.
//
// String IDs (UUIDv7) tag requests with a correlation ID. Numeric IDs come
// from a monotonic Sequence, used wherever the storage engine does not assign
// row IDs itself.
package pkguid
