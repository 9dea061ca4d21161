package tracking

import (
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

// Throttle defaults for continuous background reporting.
const (
	DefaultReportInterval = 5 * time.Second
	DefaultReportDistance = 20.0 // meters
)

// Tighter thresholds for reporting scoped to a single trip task, where the
// vehicle moves short distances between stops and position freshness
// matters more than volume.
const (
	TripTaskReportInterval = 10 * time.Second
	TripTaskReportDistance = 10.0 // meters
)

// Throttle decides, per raw sample, whether it should be transmitted.
// A candidate is admitted when either the time elapsed since the last
// transmitted sample reaches the interval or the great-circle distance from
// it reaches the threshold. The first sample after (re)start is always
// admitted. Not safe for concurrent use; the controller owns one per run.
type Throttle struct {
	interval time.Duration
	distance float64

	last *kernel.LocationSample
}

// NewThrottle creates a throttle. Non-positive parameters fall back to the
// defaults.
func NewThrottle(interval time.Duration, distanceMeters float64) *Throttle {
	if interval <= 0 {
		interval = DefaultReportInterval
	}
	if distanceMeters <= 0 {
		distanceMeters = DefaultReportDistance
	}
	return &Throttle{
		interval: interval,
		distance: distanceMeters,
	}
}

// Admit reports whether the sample should be transmitted. An admitted sample
// becomes the new reference for both the time and the distance policy.
// Elapsed time is measured between capture timestamps, so decisions are
// independent of delivery jitter.
func (t *Throttle) Admit(sample kernel.LocationSample) bool {
	if t.last == nil {
		t.record(sample)
		return true
	}

	elapsed := sample.CapturedAt.Sub(t.last.CapturedAt)
	moved := t.last.Point.DistanceTo(sample.Point)
	if elapsed < t.interval && moved < t.distance {
		return false
	}

	t.record(sample)
	return true
}

// LastSent returns the current reference sample, or nil before the first
// admission.
func (t *Throttle) LastSent() *kernel.LocationSample {
	return t.last
}

func (t *Throttle) record(sample kernel.LocationSample) {
	t.last = &sample
}
