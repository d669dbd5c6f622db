package models

import "time"

type ScanType string

const (
	ScanTypeAppQR   ScanType = "app_qr"
	ScanTypeTableQR ScanType = "table_qr"
	ScanTypeManual  ScanType = "manual"
)

// UnknownSession: session id üretemeyen istemciler için yer tutucu.
// Bu değer tekilleştirmede asla bir "ziyaretçi" sayılmaz.
const UnknownSession = "unknown"

// ScanEvent append-only tutulur, oluşturulduktan sonra güncellenmez.
type ScanEvent struct {
	ID        uint     `gorm:"primaryKey"`
	SessionID string   `gorm:"size:64;index;not null"` // istemci üretir, sunucu sadece kaydeder
	Type      ScanType `gorm:"size:20;not null"`
	TableCode *string  `gorm:"size:20"`
	IP        string   `gorm:"size:64"`
	IPData    string   `gorm:"type:jsonb"` // IP tabanlı kaba konum verisi (şehir vs.), ham JSON
	Lat       *float64
	Lon       *float64
	// DistanceKm sadece hassas GPS konumu + işletme referans konumu birlikte
	// varsa hesaplanır. IP verisinden gelen tahminle karıştırılmasın diye
	// IsGPSVerified ayrı tutulur.
	DistanceKm    *float64
	IsGPSVerified bool      `gorm:"not null;default:false"`
	UserAgent     string    `gorm:"size:255"`
	CreatedAt     time.Time `gorm:"index"`
}
