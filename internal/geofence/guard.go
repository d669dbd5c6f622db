// Package geofence: sipariş ve garson çağırma aksiyonlarının işletme
// yarıçapı içinden yapıldığını doğrular.
package geofence

import (
	"errors"

	"qrmenu-backend/internal/geomath"
	"qrmenu-backend/internal/models"

	"gorm.io/gorm"
)

// ErrLocationUnavailable: geofence devredeyken istemci konum veremedi
// (izin reddi, timeout, desteklenmeyen cihaz). Sessizce izin verilmez,
// aksiyon konum gelene veya admin geofence'i kapatana kadar bloklanır.
var ErrLocationUnavailable = errors.New("konum bilgisi alınamadı")

// Position: istemcinin tarayıcıdan aldığı GPS konumu.
type Position struct {
	Lat       float64
	Lon       float64
	AccuracyM float64
}

// Verdict tek bir eşik kontrolünün sonucu.
type Verdict struct {
	Checked    bool    // false ise geofence bu aksiyon için kapalı, sınırsız izin
	Allowed    bool
	DistanceKm float64 // Checked true ise hesaplanan mesafe
}

type Guard struct {
	db *gorm.DB
}

func NewGuard(db *gorm.DB) *Guard {
	return &Guard{db: db}
}

// Settings tek satırlık geo ayarını okur.
func (g *Guard) Settings() (models.GeoSettings, error) {
	var s models.GeoSettings
	err := g.db.First(&s, "id = ?", models.GeoSettingsID).Error
	return s, err
}

// CheckPlacement sipariş verme iznini kontrol eder.
// Konum referansı boş/bozuksa veya yarıçap <= 0 ise kontrol atlanır
// (geofence deployment bazında opsiyonel). Sınırın tam üstü (mesafe == yarıçap)
// izinlidir.
func CheckPlacement(s models.GeoSettings, pos *Position) (Verdict, error) {
	ref, ok := geomath.ParseCoordinates(s.MapsLocationRef)
	if !ok || s.GeoRadiusKm <= 0 {
		return Verdict{Checked: false, Allowed: true}, nil
	}

	if pos == nil {
		return Verdict{}, ErrLocationUnavailable
	}

	d := geomath.HaversineKm(ref.Lat, ref.Lon, pos.Lat, pos.Lon)
	return Verdict{
		Checked:    true,
		Allowed:    d <= s.GeoRadiusKm,
		DistanceKm: d,
	}, nil
}

// CheckCallStaff garson çağırma butonunun gösterilip gösterilmeyeceğini
// belirler. Sipariş yarıçapından bağımsız, metre cinsinden ayrı bir eşik;
// iki politika kasıtlı olarak ayrık tutuluyor (çağrı toleransı ile sipariş
// sıkılığı aynı şey değil).
func CheckCallStaff(s models.GeoSettings, pos *Position) (Verdict, error) {
	ref, ok := geomath.ParseCoordinates(s.MapsLocationRef)
	if !ok || s.CallStaffRadiusM <= 0 {
		return Verdict{Checked: false, Allowed: true}, nil
	}

	if pos == nil {
		return Verdict{}, ErrLocationUnavailable
	}

	d := geomath.HaversineKm(ref.Lat, ref.Lon, pos.Lat, pos.Lon)
	return Verdict{
		Checked:    true,
		Allowed:    d*1000 <= s.CallStaffRadiusM,
		DistanceKm: d,
	}, nil
}
