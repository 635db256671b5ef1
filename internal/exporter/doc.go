// Package exporter serves the scrape endpoint.
//
// A scrape goes through three steps:
//
//	Gate     reject anything but GET /metrics before touching the node
//	Collect  fetch getNodeInfo, and getNeighbors unless excluded, concurrently
//	render   node info text, then a newline, then neighbors text
//
// Failures are classified into a closed set of kinds (errors.go); one table
// maps each kind to an HTTP status and a log level. Only the two gate errors
// get their own status codes (405, 404). Everything else is an opaque 500.
//
// Exporter holds no mutable state besides its telemetry counters, so a single
// instance serves any number of concurrent scrapes.
package exporter
