// Package pkgmetrics holds the Prometheus collectors exported by the service.
package pkgmetrics
