// Package geo holds the great-circle math used by the proximity matcher.
package geo

import "math"

const earthRadiusKM = 6371.0

// DistanceKM returns the great-circle distance in kilometres between two
// points given in decimal degrees, using the spherical law of cosines.
// Inputs must be converted to radians before hitting the trig functions;
// feeding degrees in directly produces distances that are wrong by orders
// of magnitude.
func DistanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	radDeltaLng := (lng2 - lng1) * math.Pi / 180

	cosine := math.Sin(radLat1)*math.Sin(radLat2) +
		math.Cos(radLat1)*math.Cos(radLat2)*math.Cos(radDeltaLng)

	// Floating point can push the value a hair outside [-1, 1] for
	// identical or antipodal points, which would make Acos return NaN.
	cosine = math.Max(-1, math.Min(1, cosine))

	return earthRadiusKM * math.Acos(cosine)
}
