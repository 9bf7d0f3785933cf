// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Values come from an optional YAML file, built-in defaults and environment
// variables (PORT, TEST_DATABASE, DATABASE_DRIVER, DATABASE_DSN, APP_ENV, TZ),
// in increasing order of precedence. Business code depends on the Config
// interface only.
package pkgconfig
