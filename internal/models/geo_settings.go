package models

import "time"

// GeoSettings tek satırlık ayar kaydıdır (id=1). Admin günceller,
// geofence kontrolü sadece okur.
type GeoSettings struct {
	ID uint `gorm:"primaryKey"`
	// "41.0082,28.9784" formatında işletme konumu. Boş veya bozuksa
	// geofence tamamen devre dışı demektir.
	MapsLocationRef  string  `gorm:"size:100"`
	GeoRadiusKm      float64 `gorm:"not null;default:0"` // sipariş yarıçapı (km), <=0 ise kapalı
	CallStaffRadiusM float64 `gorm:"not null;default:0"` // garson çağırma yarıçapı (metre), <=0 ise kapalı
	UpdatedAt        time.Time
}

const GeoSettingsID = 1
