package geo_test

import (
	"testing"

	"heirloom/geo"

	"github.com/stretchr/testify/assert"
)

const (
	bostonLat = 42.3601
	bostonLon = -71.0589
)

func TestDistanceIdenticalPointsIsZero(t *testing.T) {
	assert.Zero(t, geo.DistanceMiles(bostonLat, bostonLon, bostonLat, bostonLon))
}

func TestDistanceIsSymmetric(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"boston to cambridge", bostonLat, bostonLon, 42.3736, -71.1097},
		{"boston to concord", bostonLat, bostonLon, 42.4606, -71.3489},
		{"across the equator", 10.0, 20.0, -10.0, -20.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := geo.DistanceMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			ba := geo.DistanceMiles(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			assert.InDelta(t, ab, ba, 1e-9)
		})
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// Boston Common to Harvard Square is around 3 miles.
	d := geo.DistanceMiles(bostonLat, bostonLon, 42.3736, -71.1097)
	assert.InDelta(t, 3.0, d, 0.5)

	// Boston to Concord is around 17 miles.
	d = geo.DistanceMiles(bostonLat, bostonLon, 42.4606, -71.3489)
	assert.InDelta(t, 17.0, d, 2.0)
}
