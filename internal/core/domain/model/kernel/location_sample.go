package kernel

import (
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// LocationSample is one raw position reading from the device positioning
// capability. Samples are ephemeral: only the last transmitted and last
// observed samples are retained, for throttling and display.
type LocationSample struct {
	Point      GeoPoint
	Accuracy   float64
	Heading    *float64
	Speed      *float64
	CapturedAt time.Time
}

// NewLocationSample builds a sample around a validated point.
// Accuracy is in meters and must not be negative; heading and speed are
// optional metadata passed through to the reporting endpoint.
func NewLocationSample(point GeoPoint, accuracy float64, heading, speed *float64, capturedAt time.Time) (LocationSample, error) {
	if err := point.Validate(); err != nil {
		return LocationSample{}, err
	}
	if accuracy < 0 {
		return LocationSample{}, errs.NewValueIsInvalidError("accuracy")
	}
	if capturedAt.IsZero() {
		return LocationSample{}, errs.NewValueIsRequiredError("capturedAt")
	}

	return LocationSample{
		Point:      point,
		Accuracy:   accuracy,
		Heading:    heading,
		Speed:      speed,
		CapturedAt: capturedAt,
	}, nil
}
