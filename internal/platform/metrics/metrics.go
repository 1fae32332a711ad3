// Package metrics exposes the run's quality indicators as Prometheus
// gauges: a dedicated registry owned by the Collector, plus a Serve
// helper for exposing it over HTTP.
package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	HV          prometheus.Gauge
	Spread      prometheus.Gauge
	Epsilon     prometheus.Gauge
	IGD         prometheus.Gauge
	ArchiveSize prometheus.Gauge
	Iteration   prometheus.Gauge
	CurrentK    prometheus.Gauge

	InsertAccepted prometheus.Counter
	InsertRejected prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		reg: reg,
		HV: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_hypervolume",
			Help: "Exact hypervolume of the current archive.",
		}),
		Spread: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_spread",
			Help: "Deb's generalized spread of the current archive.",
		}),
		Epsilon: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_epsilon_indicator",
			Help: "Additive epsilon-indicator against the prior convergence window.",
		}),
		IGD: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_igd",
			Help: "Inverted generational distance against the reference front.",
		}),
		ArchiveSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_archive_size",
			Help: "Current number of archive members.",
		}),
		Iteration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_iteration",
			Help: "Current outer-loop iteration count.",
		}),
		CurrentK: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "movns_current_k",
			Help: "Neighborhood escalation index of the most recent outer loop.",
		}),
		InsertAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "movns_archive_inserts_accepted_total",
			Help: "Total archive insertions that changed the archive.",
		}),
		InsertRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "movns_archive_inserts_rejected_total",
			Help: "Total archive insertions rejected as dominated.",
		}),
	}
	reg.MustRegister(
		c.HV, c.Spread, c.Epsilon, c.IGD, c.ArchiveSize, c.Iteration, c.CurrentK,
		c.InsertAccepted, c.InsertRejected,
	)
	return c
}

// Observe records one outer loop's indicators.
func (c *Collector) Observe(iteration, archiveSize, currentK int, hv, spread, epsilon, igd float64) {
	c.Iteration.Set(float64(iteration))
	c.ArchiveSize.Set(float64(archiveSize))
	c.CurrentK.Set(float64(currentK))
	c.HV.Set(hv)
	c.Spread.Set(spread)
	c.Epsilon.Set(epsilon)
	c.IGD.Set(igd)
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics, for an out-of-scope
// orchestration script to scrape during a long-running experiment batch.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}
