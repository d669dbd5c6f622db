package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantLat float64
		wantLon float64
		ok      bool
	}{
		{"valid", "41.0082,28.9784", 41.0082, 28.9784, true},
		{"valid with spaces", " 41.0082 , 28.9784 ", 41.0082, 28.9784, true},
		{"negative coords", "-33.8688,151.2093", -33.8688, 151.2093, true},
		{"empty", "", 0, 0, false},
		{"garbage", "adres: Beyoğlu", 0, 0, false},
		{"single value", "41.0082", 0, 0, false},
		{"three values", "41,28,7", 0, 0, false},
		{"lat out of range", "91,28", 0, 0, false},
		{"lon out of range", "41,181", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCoordinates(tt.ref)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.wantLat, got.Lat)
				assert.Equal(t, tt.wantLon, got.Lon)
			}
		})
	}
}

func TestHaversineSamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(41.0082, 28.9784, 41.0082, 28.9784))
}

func TestHaversineSymmetric(t *testing.T) {
	d1 := HaversineKm(41.0082, 28.9784, 39.9334, 32.8597)
	d2 := HaversineKm(39.9334, 32.8597, 41.0082, 28.9784)
	assert.Equal(t, d1, d2)
}

func TestHaversineKnownDistance(t *testing.T) {
	// İstanbul -> Ankara, yaklaşık 350 km
	d := HaversineKm(41.0082, 28.9784, 39.9334, 32.8597)
	assert.InDelta(t, 351.0, d, 5.0)
}

func TestHaversineNeverNegative(t *testing.T) {
	d := HaversineKm(-33.8688, 151.2093, 41.0082, 28.9784)
	assert.Greater(t, d, 0.0)
}
