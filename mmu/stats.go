package mmu

import (
	"log/slog"
	"math"

	"golang.org/x/exp/slices"
)

// Histogram tracks a distribution of small non-negative samples with
// percentile support. It is owned by one simulator and is not synchronized.
type Histogram struct {
	samples []float64
	maxSize int  // Maximum samples to retain
	sorted  bool // Track if samples are sorted
}

// NewHistogram creates a new histogram with a max sample size
func NewHistogram(maxSize int) *Histogram {
	if maxSize <= 0 {
		maxSize = 10000 // Default: keep last 10k samples
	}
	return &Histogram{
		samples: make([]float64, 0, maxSize),
		maxSize: maxSize,
		sorted:  true,
	}
}

// Record adds a sample
func (h *Histogram) Record(v float64) {
	// If at capacity, remove oldest sample (FIFO)
	if len(h.samples) >= h.maxSize {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, v)
	h.sorted = false
}

// Percentile calculates the given percentile (0-100)
func (h *Histogram) Percentile(p float64) float64 {
	if len(h.samples) == 0 {
		return 0
	}
	if !h.sorted {
		slices.Sort(h.samples)
		h.sorted = true
	}

	rank := (p / 100.0) * float64(len(h.samples)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return h.samples[lower]
	}

	// Linear interpolation between lower and upper
	weight := rank - float64(lower)
	return h.samples[lower]*(1-weight) + h.samples[upper]*weight
}

// Mean calculates the average sample
func (h *Histogram) Mean() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range h.samples {
		sum += v
	}
	return sum / float64(len(h.samples))
}

// Max returns the largest sample
func (h *Histogram) Max() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	max := h.samples[0]
	for _, v := range h.samples {
		if v > max {
			max = v
		}
	}
	return max
}

// Count returns the number of samples
func (h *Histogram) Count() int {
	return len(h.samples)
}

// HistogramSnapshot holds percentile statistics at one point in time
type HistogramSnapshot struct {
	Count int     `json:"count"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	P99   float64 `json:"p99"`
}

// Snapshot captures current histogram statistics
func (h *Histogram) Snapshot() HistogramSnapshot {
	return HistogramSnapshot{
		Count: h.Count(),
		Max:   h.Max(),
		Mean:  h.Mean(),
		P50:   h.Percentile(50),
		P95:   h.Percentile(95),
		P99:   h.Percentile(99),
	}
}

// counters are the live statistics of one simulator.
// They only ever grow.
type counters struct {
	accesses   uint64
	hits       uint64
	pageFaults uint64
	diskReads  uint64
	diskWrites uint64
	evictions  uint64

	// frames visited per victim search of a SweepReporter
	sweepLengths *Histogram
}

func newCounters() *counters {
	return &counters{sweepLengths: NewHistogram(10000)}
}

func (c *counters) recordHit() {
	c.accesses++
	c.hits++
}

func (c *counters) recordFault() {
	c.accesses++
	c.pageFaults++
	c.diskReads++
}

func (c *counters) recordEviction(dirty bool) {
	c.evictions++
	if dirty {
		c.diskWrites++
	}
}

func (c *counters) snapshot() Statistics {
	return Statistics{
		Accesses:    c.accesses,
		Hits:        c.hits,
		PageFaults:  c.pageFaults,
		DiskReads:   c.diskReads,
		DiskWrites:  c.diskWrites,
		Evictions:   c.evictions,
		ClockSweeps: c.sweepLengths.Snapshot(),
	}
}

// Statistics is a value snapshot of a simulator's counters
type Statistics struct {
	Accesses    uint64            `json:"accesses"`
	Hits        uint64            `json:"hits"`
	PageFaults  uint64            `json:"page_faults"`
	DiskReads   uint64            `json:"disk_reads"`
	DiskWrites  uint64            `json:"disk_writes"`
	Evictions   uint64            `json:"evictions"`
	ClockSweeps HistogramSnapshot `json:"clock_sweeps"`
}

// FaultRate returns page faults per access, or 0 before any access
func (s Statistics) FaultRate() float64 {
	if s.Accesses == 0 {
		return 0.0
	}
	return float64(s.PageFaults) / float64(s.Accesses)
}

// HitRate returns hits per access, or 0 before any access
func (s Statistics) HitRate() float64 {
	if s.Accesses == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(s.Accesses)
}

// Log logs all statistics using structured logging
func (s Statistics) Log(logger *slog.Logger, policy string, frames int) {
	attrs := []any{
		slog.String("policy", policy),
		slog.Int("frames", frames),
		slog.Group("counters",
			slog.Uint64("accesses", s.Accesses),
			slog.Uint64("hits", s.Hits),
			slog.Uint64("page_faults", s.PageFaults),
			slog.Uint64("disk_reads", s.DiskReads),
			slog.Uint64("disk_writes", s.DiskWrites),
			slog.Uint64("evictions", s.Evictions),
		),
		slog.Float64("fault_rate", s.FaultRate()),
	}
	if s.ClockSweeps.Count > 0 {
		attrs = append(attrs, slog.Group("clock_sweep",
			slog.Int("count", s.ClockSweeps.Count),
			slog.Float64("mean", s.ClockSweeps.Mean),
			slog.Float64("p95", s.ClockSweeps.P95),
			slog.Float64("max", s.ClockSweeps.Max),
		))
	}
	logger.Info("Simulation statistics", attrs...)
}
