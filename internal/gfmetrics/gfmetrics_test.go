package gfmetrics

import "testing"

func TestCounter(t *testing.T) {
	c := NewCounter("regions")
	c.Inc()
	c.Add(5)
	c.Add(-3) // ignored
	if got := c.Value(); got != 6 {
		t.Errorf("Value() = %d, want 6", got)
	}
	if c.Name() != "regions" {
		t.Errorf("Name() = %q, want regions", c.Name())
	}
}

func TestHistogram(t *testing.T) {
	h := NewHistogram("latency_ms")
	for _, v := range []float64{2, 4, 6} {
		h.Observe(v)
	}
	if got := h.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := h.Mean(); got != 4 {
		t.Errorf("Mean() = %v, want 4", got)
	}
	if got := h.Min(); got != 2 {
		t.Errorf("Min() = %v, want 2", got)
	}
	if got := h.Max(); got != 6 {
		t.Errorf("Max() = %v, want 6", got)
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := NewHistogram("empty")
	if got := h.Mean(); got != 0 {
		t.Errorf("Mean() on empty histogram = %v, want 0", got)
	}
	if got := h.Min(); got != 0 {
		t.Errorf("Min() on empty histogram = %v, want 0", got)
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()
	c1 := r.Counter("a")
	c2 := r.Counter("a")
	if c1 != c2 {
		t.Fatalf("Registry.Counter did not return the same instance for the same name")
	}
	c1.Inc()
	if got := r.Counter("a").Value(); got != 1 {
		t.Errorf("Value() = %d, want 1", got)
	}

	h := r.Histogram("b")
	h.Observe(10)
	snap := r.Snapshot()
	if snap["a"].(int64) != 1 {
		t.Errorf("snapshot[a] = %v, want 1", snap["a"])
	}
	if _, ok := snap["b"]; !ok {
		t.Errorf("snapshot missing histogram b")
	}
}
