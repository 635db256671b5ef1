package exporter

import "net/http"

// MetricsPath is the only path the scrape endpoint answers on.
const MetricsPath = "/metrics"

// Gate accepts only GET /metrics. The method is checked before the path.
func Gate(method, path string) error {
	if method != http.MethodGet {
		return &UnsupportedMethodError{Method: method}
	}
	if path != MetricsPath {
		return &UnsupportedPathError{Path: path}
	}
	return nil
}
