package exporter

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/obsidianstack/iri-exporter/internal/iri"
	"github.com/obsidianstack/iri-exporter/internal/render"
	"github.com/obsidianstack/iri-exporter/internal/telemetry"
)

// Upstream is the IRI node as seen by the exporter. *iri.Client implements it.
type Upstream interface {
	NodeInfo(ctx context.Context) (iri.NodeInfo, error)
	Neighbors(ctx context.Context) (iri.Neighbors, error)
}

// Exporter answers scrapes by querying an Upstream. It is an http.Handler.
type Exporter struct {
	upstream         Upstream
	excludeNeighbors bool
	metrics          *telemetry.Metrics
}

// New creates an Exporter. excludeNeighbors is fixed for the Exporter's
// lifetime; m receives scrape and upstream counters.
func New(up Upstream, excludeNeighbors bool, m *telemetry.Metrics) *Exporter {
	return &Exporter{upstream: up, excludeNeighbors: excludeNeighbors, metrics: m}
}

// Collect fetches the planned records concurrently and renders them.
//
// The first failing call cancels the context of the other one and its error
// is returned; no partial output is produced.
func (e *Exporter) Collect(ctx context.Context) (string, error) {
	plan := PlanFor(e.excludeNeighbors)

	g, gctx := errgroup.WithContext(ctx)

	var nodeInfo iri.NodeInfo
	g.Go(func() error {
		return e.observe(iri.CommandGetNodeInfo, func() (err error) {
			nodeInfo, err = e.upstream.NodeInfo(gctx)
			return err
		})
	})

	var neighbors iri.Neighbors
	if plan == PlanNodeInfoAndNeighbors {
		g.Go(func() error {
			return e.observe(iri.CommandGetNeighbors, func() (err error) {
				neighbors, err = e.upstream.Neighbors(gctx)
				return err
			})
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	if plan == PlanNodeInfoOnly {
		return render.NodeInfo(nodeInfo), nil
	}
	return render.NodeInfo(nodeInfo) + "\n" + render.Neighbors(neighbors), nil
}

// observe runs one upstream call and records its latency and outcome.
func (e *Exporter) observe(command iri.Command, call func() error) error {
	start := time.Now()
	err := call()
	e.metrics.UpstreamDuration.WithLabelValues(string(command)).Observe(time.Since(start).Seconds())

	outcome := "success"
	switch {
	case errors.Is(err, context.Canceled):
		// Aborted after a sibling call failed or the scraper hung up.
		outcome = "canceled"
	case err != nil:
		outcome = Classify(err).String()
	}
	e.metrics.UpstreamRequests.WithLabelValues(string(command), outcome).Inc()
	return err
}
