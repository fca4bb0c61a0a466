package session

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// GeoPoint is a value object holding the geolocation captured when a delivery
// is completed. Latitude must lie in [-90, 90] and longitude in [-180, 180].
type GeoPoint struct {
	lat float64
	lon float64
}

// NewGeoPoint creates a validated geolocation.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lon < -180 || lon > 180 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lon, -180, 180)
	}
	return GeoPoint{lat: lat, lon: lon}, nil
}

func (g GeoPoint) Lat() float64 { return g.lat }
func (g GeoPoint) Lon() float64 { return g.lon }

// String returns a "lat,lon" rendering for logs and display.
func (g GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", g.lat, g.lon)
}
