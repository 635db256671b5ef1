package exporter

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/common/expfmt"
)

// contentType is the text exposition format, version 0.0.4.
var contentType = string(expfmt.NewFormat(expfmt.TypeTextPlain))

func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.Default().With("scrape_id", uuid.NewString())

	if err := Gate(r.Method, r.URL.Path); err != nil {
		if Classify(err) == KindUnsupportedMethod {
			w.Header().Set("Allow", http.MethodGet)
		}
		e.fail(w, r, logger, err)
		return
	}

	body, err := e.Collect(r.Context())
	if err != nil {
		e.fail(w, r, logger, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		logger.Debug("exporter: write response", "err", err)
	}

	e.metrics.Scrapes.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	logger.Debug("exporter: scrape served",
		"plan", PlanFor(e.excludeNeighbors).String(),
		"bytes", len(body),
		"elapsed", time.Since(start),
	)
}

// fail responds with the status mapped from err. The body never carries
// error details.
func (e *Exporter) fail(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusCode(err)
	level := LogLevel(err)
	if r.Context().Err() != nil {
		// The scraper hung up; nobody will read the 500.
		level = slog.LevelDebug
	}

	logger.Log(r.Context(), level, "exporter: scrape failed",
		"method", r.Method,
		"path", r.URL.Path,
		"kind", Classify(err).String(),
		"status", status,
		"err", err,
	)

	e.metrics.Scrapes.WithLabelValues(strconv.Itoa(status)).Inc()
	http.Error(w, http.StatusText(status), status)
}
