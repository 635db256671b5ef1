// Package telemetry holds the exporter's own Prometheus instrumentation:
// scrape outcomes and per-command upstream call counts and latencies. These
// are served on the separate telemetry port so the scrape endpoint's output
// stays exactly the IRI node's metrics.
package telemetry
