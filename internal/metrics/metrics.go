// Package metrics exports inventory activity as Prometheus series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"loot-grid/internal/inventory"
)

// Metrics owns the collectors shared by every session.
type Metrics struct {
	transfers  *prometheus.CounterVec
	rejections *prometheus.CounterVec
	sessions   prometheus.Gauge
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		transfers: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lootgrid",
			Name:      "transfers_total",
			Help:      "Completed item transfers by kind.",
		}, []string{"kind"}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lootgrid",
			Name:      "admission_rejections_total",
			Help:      "Acquire attempts refused by a capacity limit.",
		}, []string{"reason"}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lootgrid",
			Name:      "sessions_active",
			Help:      "Inventory sessions currently open.",
		}),
	}
}

// SessionStarted increments the active session gauge.
func (m *Metrics) SessionStarted() { m.sessions.Inc() }

// SessionEnded decrements the active session gauge.
func (m *Metrics) SessionEnded() { m.sessions.Dec() }

// Listener returns an inventory listener that feeds these collectors.
func (m *Metrics) Listener() inventory.Listener {
	return recorder{m: m}
}

type recorder struct {
	inventory.NopListener
	m *Metrics
}

func (r recorder) Transferred(ev inventory.TransferEvent) {
	r.m.transfers.WithLabelValues(ev.Kind.String()).Inc()
}

func (r recorder) AdmissionRejected(rej inventory.Rejection) {
	r.m.rejections.WithLabelValues(rej.Reason.String()).Inc()
}
