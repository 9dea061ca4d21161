// Package device provides position source implementations. The real mobile
// shell injects the platform positioning capability; the simulated source
// here drives the tracking pipeline in development and demo setups.
package device

import (
	"context"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

// degreesPerMeter approximates one meter of latitude in decimal degrees.
const degreesPerMeter = 1.0 / 111_320.0

// SimulatedSource emits a sample every tick, drifting north-east from the
// starting point at a fixed step. It implements ports.PositionSource.
type SimulatedSource struct {
	start      kernel.GeoPoint
	stepMeters float64
	tick       time.Duration
}

// NewSimulatedSource creates a source walking from start. Non-positive step
// or tick fall back to 10 meters per 2 seconds.
func NewSimulatedSource(start kernel.GeoPoint, stepMeters float64, tick time.Duration) *SimulatedSource {
	if stepMeters <= 0 {
		stepMeters = 10
	}
	if tick <= 0 {
		tick = 2 * time.Second
	}
	return &SimulatedSource{
		start:      start,
		stepMeters: stepMeters,
		tick:       tick,
	}
}

// Watch produces samples until ctx is cancelled, then closes the channel.
// The simulated source never denies permission.
func (s *SimulatedSource) Watch(ctx context.Context) (<-chan kernel.LocationSample, error) {
	out := make(chan kernel.LocationSample)

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		lat := s.start.Lat()
		lng := s.start.Lng()
		step := s.stepMeters * degreesPerMeter

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				lat += step
				lng += step

				point, err := kernel.NewGeoPoint(lat, lng)
				if err != nil {
					// Walked off the grid; stop emitting.
					return
				}

				speed := s.stepMeters / s.tick.Seconds()
				heading := 45.0
				sample, err := kernel.NewLocationSample(point, 5.0, &heading, &speed, now)
				if err != nil {
					return
				}

				select {
				case out <- sample:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
