package ports

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

// RouteVersionMarks persists the per-trip last-seen routeVersion across
// sessions. It exists solely to detect externally-originated route changes;
// a missing mark simply means the trip was never fetched on this device.
type RouteVersionMarks interface {
	// Get returns the stored mark and whether one exists.
	Get(ctx context.Context, tripID kernel.UUID) (int64, bool, error)

	// Put stores the mark, overwriting any previous value.
	Put(ctx context.Context, tripID kernel.UUID, version int64) error
}

// SampleJournal persists the last transmitted location sample, so the
// reporting throttle's distance reference survives a process restart.
// Best-effort: a write failure never blocks reporting.
type SampleJournal interface {
	// LastSent returns the last transmitted sample, or nil when none was
	// recorded yet.
	LastSent(ctx context.Context) (*kernel.LocationSample, error)

	// SetLastSent overwrites the recorded sample.
	SetLastSent(ctx context.Context, sample kernel.LocationSample) error
}
