// Package monitoring exposes Prometheus metrics for the boarding gate.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gate_scans_total",
			Help: "Total boarding pass scans by verdict and flight",
		},
		[]string{"verdict", "flight"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gate_active_sessions",
			Help: "Current number of open boarding sessions",
		},
	)

	reservationsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gate_reservations_loaded",
			Help: "Number of reservations in the validated table",
		},
	)
)

// Monitor records gate activity. All methods are safe for concurrent use;
// the underlying collectors handle synchronization.
type Monitor struct{}

// NewMonitor returns a Monitor backed by the package-level collectors.
func NewMonitor() *Monitor { return &Monitor{} }

// TrackScan counts one scan outcome.
func (m *Monitor) TrackScan(verdict, flight string) {
	scansTotal.WithLabelValues(verdict, flight).Inc()
}

// SetActiveSessions updates the open-sessions gauge.
func (m *Monitor) SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// SetReservationsLoaded records the size of the loaded table.
func (m *Monitor) SetReservationsLoaded(n int) {
	reservationsLoaded.Set(float64(n))
}
