// Package geomath: koordinat çözme ve mesafe hesabı için saf yardımcılar.
package geomath

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm: haversine için ortalama dünya yarıçapı.
const EarthRadiusKm = 6371.0

type Coordinates struct {
	Lat float64
	Lon float64
}

// ParseCoordinates "41.0082,28.9784" tarzı bir konum referansını çözer.
// Bozuk girdi hata değil false döndürür; çağıran taraf bunu
// "geofence kapalı" olarak yorumlamak zorunda.
func ParseCoordinates(ref string) (Coordinates, bool) {
	parts := strings.Split(strings.TrimSpace(ref), ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, false
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}

	return Coordinates{Lat: lat, Lon: lon}, true
}

// HaversineKm iki nokta arasındaki büyük daire mesafesini km cinsinden verir.
// Simetriktir; aynı nokta için tam 0 döner.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
