// Package metrics optionally mirrors a scan run's statistics into
// Prometheus, served over HTTP via promhttp.Handler(). Registration
// only happens when the CLI is asked for it (--metrics-addr); nothing
// in this package runs unless a caller opts in.
package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/okdaichi/tilfa/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// binLabels names the six stats.Aggregator bins in metric-label form.
var binLabels = [6]string{"0", "1", "2", "3", "4", "5+"}

// Registry holds the Prometheus collectors this package registers.
type Registry struct {
	byBin        *prometheus.CounterVec
	distribution prometheus.Histogram
	reachable    prometheus.Gauge
	reachTotal   prometheus.Gauge
}

// NewRegistry creates and registers the collectors against reg. Pass
// prometheus.DefaultRegisterer to expose them via promhttp.Handler().
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		byBin: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tilfa_label_count_total",
			Help: "Count of (pair, failure) trials by required label-stack depth bin.",
		}, []string{"bin"}),
		distribution: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tilfa_label_count_distribution",
			Help:    "Distribution of required label-stack depth across all trials.",
			Buckets: prometheus.LinearBuckets(0, 1, 6),
		}),
		reachable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tilfa_pairs_reachable",
			Help: "Count of (pair, failure) trials that remained reachable post-failure.",
		}),
		reachTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tilfa_pairs_scanned_total",
			Help: "Total count of (pair, failure) trials scanned, reachable or not.",
		}),
	}
	reg.MustRegister(r.byBin, r.distribution, r.reachable, r.reachTotal)
	return r
}

// Observe records one label-count observation.
func (r *Registry) Observe(n int) {
	if n < 0 {
		n = 0
	}
	bin := n
	if bin > 5 {
		bin = 5
	}
	r.byBin.WithLabelValues(binLabels[bin]).Inc()
	r.distribution.Observe(float64(n))
}

// Mirror pushes every bin of a finished stats.Summary into the
// registry in one pass, for callers that aggregate first and report
// once at the end of a run.
func (r *Registry) Mirror(summary stats.Summary) {
	for bin, count := range summary.Bins {
		for i := 0; i < count; i++ {
			r.byBin.WithLabelValues(binLabels[bin]).Inc()
			r.distribution.Observe(float64(bin))
		}
	}
}

// MirrorReachability pushes a finished stats.BinarySummary into the
// reachability gauges in one pass.
func (r *Registry) MirrorReachability(summary stats.BinarySummary) {
	r.reachable.Set(float64(summary.OfInterest))
	r.reachTotal.Set(float64(summary.Total))
}

// Serve starts an HTTP server exposing /metrics on addr and blocks
// until the request count reaches one scrape or grace elapses,
// whichever comes first, then shuts the server down. This keeps the
// CLI's default path free of any listening socket while still letting
// an operator pull metrics from a short-lived batch run.
func Serve(addr string, grace time.Duration) error {
	scraped := make(chan struct{}, 1)
	handler := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, req *http.Request) {
		handler.ServeHTTP(w, req)
		select {
		case scraped <- struct{}{}:
		default:
		}
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-scraped:
	case <-time.After(grace):
		log.Printf("metrics: no scrape received within %s, shutting down", grace)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
