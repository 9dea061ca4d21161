package kernel

import (
	"fmt"
	"math"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

const (
	// MinLatitude and MaxLatitude bound valid latitudes in degrees.
	MinLatitude = -90.0
	MaxLatitude = 90.0

	// MinLongitude and MaxLongitude bound valid longitudes in degrees.
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6_371_000.0
)

// ErrGeoPointIsNotConstructed indicates a GeoPoint created outside NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint",
)

// GeoPoint is an immutable geographic coordinate pair in decimal degrees.
// It is the unit of position for stops and location samples, and carries the
// great-circle distance calculation the reporting throttle depends on.
type GeoPoint struct {
	lat float64
	lng float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a validated coordinate pair.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// NaN is rejected.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(
			"latitude",
			fmt.Errorf("%v is not within [%v, %v]", lat, MinLatitude, MaxLatitude),
		)
	}
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(
			"longitude",
			fmt.Errorf("%v is not within [%v, %v]", lng, MinLongitude, MaxLongitude),
		)
	}

	return GeoPoint{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// Validate returns ErrGeoPointIsNotConstructed for zero-value points.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// DistanceTo returns the great-circle (haversine) distance to other in meters.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
