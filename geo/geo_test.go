package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKM                 float64
		tolKM                  float64
	}{
		{
			// One degree of latitude on the same meridian.
			name: "one degree of latitude",
			lat1: 0, lng1: 0, lat2: 1, lng2: 0,
			wantKM: 111.19, tolKM: 0.5,
		},
		{
			name: "buenos aires to cordoba",
			lat1: -34.6037, lng1: -58.3816,
			lat2: -31.4201, lng2: -64.1888,
			wantKM: 646, tolKM: 10,
		},
		{
			name: "paris to london",
			lat1: 48.8566, lng1: 2.3522,
			lat2: 51.5074, lng2: -0.1278,
			wantKM: 344, tolKM: 5,
		},
		{
			name: "same point",
			lat1: -34.6, lng1: -58.4, lat2: -34.6, lng2: -58.4,
			wantKM: 0, tolKM: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKM(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.wantKM, got, tt.tolKM)
		})
	}
}

// Symmetry sanity check: distance must not depend on argument order.
func TestDistanceKM_Symmetric(t *testing.T) {
	a := DistanceKM(-34.6, -58.4, -31.4, -64.2)
	b := DistanceKM(-31.4, -64.2, -34.6, -58.4)
	assert.InDelta(t, a, b, 1e-9)
}
