// Package geo computes great-circle distances for the office geofence.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance in meters between two
// points given in decimal degrees. The result is symmetric and never
// negative; identical points come out at (floating point) zero and
// antipodal points do not produce NaN.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// Rounding can push a just past 1 for antipodal points; clamp so
	// Sqrt(1-a) stays real.
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinFence reports whether the point (lat, lng) lies within
// radiusMeters of the center, boundary inclusive, along with the
// computed distance.
func WithinFence(lat, lng, centerLat, centerLng, radiusMeters float64) (bool, float64) {
	d := Haversine(lat, lng, centerLat, centerLng)
	return d <= radiusMeters, d
}
