// Package pkgroutine runs named background tasks with bounded concurrency.
//
// The Manager collects task errors and turns panics into errors so a failing
// server loop or shutdown hook is reported instead of crashing the process.
package pkgroutine
