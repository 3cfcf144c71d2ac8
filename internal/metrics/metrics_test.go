package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
)

func TestListenerCountsTransfersAndRejections(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	cat, err := catalog.New([]catalog.Record{{Name: "Anvil", Volume: 600, Mass: 10}})
	if err != nil {
		t.Fatal(err)
	}
	c, err := inventory.NewCoordinator(cat, inventory.Options{Listener: m.Listener()})
	if err != nil {
		t.Fatal(err)
	}
	c.Acquire(0, 2) // second copy is too large
	c.Delete(0)

	if got := testutil.ToFloat64(m.transfers.WithLabelValues("acquired")); got != 1 {
		t.Errorf("acquired = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.transfers.WithLabelValues("deleted")); got != 1 {
		t.Errorf("deleted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("too large")); got != 1 {
		t.Errorf("too large = %v, want 1", got)
	}
}

func TestSessionGauge(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()
	if got := testutil.ToFloat64(m.sessions); got != 1 {
		t.Errorf("sessions = %v, want 1", got)
	}
}
