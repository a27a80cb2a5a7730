// Package geo provides great-circle distance math and a gazetteer-backed
// geocoder for the greater Boston coverage area.
package geo

import "math"

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3959.0

// DistanceMiles computes the great-circle distance between two points given
// in degrees, using the haversine formula.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
