package geofence

import (
	"testing"

	"qrmenu-backend/internal/geomath"
	"qrmenu-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storeLat = 41.0082
	storeLon = 28.9784
)

func settings(radiusKm float64) models.GeoSettings {
	return models.GeoSettings{
		ID:              models.GeoSettingsID,
		MapsLocationRef: "41.0082,28.9784",
		GeoRadiusKm:     radiusKm,
	}
}

func TestCheckPlacementSkippedWhenRefMissing(t *testing.T) {
	v, err := CheckPlacement(models.GeoSettings{GeoRadiusKm: 5}, nil)
	require.NoError(t, err)
	assert.False(t, v.Checked)
	assert.True(t, v.Allowed)
}

func TestCheckPlacementSkippedWhenRefUnparsable(t *testing.T) {
	s := models.GeoSettings{MapsLocationRef: "Beyoğlu, İstanbul", GeoRadiusKm: 5}
	v, err := CheckPlacement(s, nil)
	require.NoError(t, err)
	assert.False(t, v.Checked)
	assert.True(t, v.Allowed)
}

func TestCheckPlacementSkippedWhenRadiusZero(t *testing.T) {
	v, err := CheckPlacement(settings(0), nil)
	require.NoError(t, err)
	assert.False(t, v.Checked)
	assert.True(t, v.Allowed)
}

func TestCheckPlacementLocationUnavailable(t *testing.T) {
	_, err := CheckPlacement(settings(5), nil)
	assert.ErrorIs(t, err, ErrLocationUnavailable)
}

func TestCheckPlacementBoundaryIsAllowed(t *testing.T) {
	// Mesafe == yarıçap sınır durumu izinli olmalı. Aynı haversine
	// hesabıyla ölçülen mesafeyi yarıçap olarak verirsek eşitlik kesindir.
	userLat, userLon := 41.0500, 28.9784
	d := geomath.HaversineKm(storeLat, storeLon, userLat, userLon)
	require.Greater(t, d, 0.0)

	v, err := CheckPlacement(settings(d), &Position{Lat: userLat, Lon: userLon})
	require.NoError(t, err)
	assert.True(t, v.Checked)
	assert.True(t, v.Allowed)
	assert.Equal(t, d, v.DistanceKm)
}

func TestCheckPlacementJustOutsideIsDenied(t *testing.T) {
	userLat, userLon := 41.0500, 28.9784
	d := geomath.HaversineKm(storeLat, storeLon, userLat, userLon)

	// Yarıçapı mesafenin 0.1 metre altına çek: artık dışarıdayız
	v, err := CheckPlacement(settings(d-0.0001), &Position{Lat: userLat, Lon: userLon})
	require.NoError(t, err)
	assert.True(t, v.Checked)
	assert.False(t, v.Allowed)
}

func TestCheckPlacementWithinRadius(t *testing.T) {
	// ~460 m kuzey, 5 km yarıçap
	v, err := CheckPlacement(settings(5), &Position{Lat: 41.0123, Lon: 28.9784})
	require.NoError(t, err)
	assert.True(t, v.Checked)
	assert.True(t, v.Allowed)
	assert.InDelta(t, 0.46, v.DistanceKm, 0.05)
}

func TestCheckCallStaffIndependentThreshold(t *testing.T) {
	s := settings(5)
	s.CallStaffRadiusM = 100

	// 460 m uzaklık: sipariş yarıçapının (5 km) içinde ama çağrı
	// yarıçapının (100 m) dışında. İki karar birbirinden bağımsız.
	pos := &Position{Lat: 41.0123, Lon: 28.9784}

	order, err := CheckPlacement(s, pos)
	require.NoError(t, err)
	assert.True(t, order.Allowed)

	staff, err := CheckCallStaff(s, pos)
	require.NoError(t, err)
	assert.True(t, staff.Checked)
	assert.False(t, staff.Allowed)
}

func TestCheckCallStaffSkippedWhenRadiusZero(t *testing.T) {
	v, err := CheckCallStaff(settings(5), nil)
	require.NoError(t, err)
	assert.False(t, v.Checked)
	assert.True(t, v.Allowed)
}
