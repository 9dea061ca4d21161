package ports

import (
	"context"
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

var (
	// ErrPermissionDenied is returned by PositionSource.Watch when the
	// required positioning permission is not granted. Terminal until the
	// user grants permission and tracking is explicitly restarted.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrTripLocationUnsupported is returned by Gateway.FetchTripLocation
	// when the backend has no trip-level location endpoint; callers fall
	// back to FetchDriverLocation.
	ErrTripLocationUnsupported = errors.New("trip-level location endpoint unsupported")
)

// PositionSource wraps the device positioning capability. Watch produces a
// lazy, infinite sequence of raw samples with accuracy/heading/speed
// metadata.
//
// The returned channel is not restartable: it is closed when ctx is
// cancelled and a new Watch call is required to resume sampling. Permission
// acquisition happens inside Watch, before any sample is produced.
type PositionSource interface {
	Watch(ctx context.Context) (<-chan kernel.LocationSample, error)
}
