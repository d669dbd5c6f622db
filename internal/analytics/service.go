package analytics

import (
	"errors"
	"strings"

	"qrmenu-backend/internal/geomath"
	"qrmenu-backend/internal/models"

	"gorm.io/gorm"
)

var ErrUnknownScanType = errors.New("bilinmeyen tarama tipi")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type RecordInput struct {
	SessionID string // istemci üretir; boş gelirse "unknown" yazılır
	Type      models.ScanType
	TableCode string
	IP        string
	IPData    string // IP tabanlı kaba konum, ham JSON
	Lat       *float64
	Lon       *float64
	UserAgent string
}

// RecordScan sayfa girişinde değişmez bir ziyaret olayı ekler.
// Hassas GPS konumu ve işletme referans konumu ikisi birden varsa mesafe
// hesaplanıp is_gps_verified=true yazılır; sadece IP verisi varsa olay
// doğrulanmamış kalır. İki güven seviyesi asla karıştırılmaz.
func (s *Service) RecordScan(input RecordInput) (*models.ScanEvent, error) {
	switch input.Type {
	case models.ScanTypeAppQR, models.ScanTypeTableQR, models.ScanTypeManual:
	default:
		return nil, ErrUnknownScanType
	}

	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = models.UnknownSession
	}

	ev := models.ScanEvent{
		SessionID: sessionID,
		Type:      input.Type,
		IP:        input.IP,
		IPData:    input.IPData,
		Lat:       input.Lat,
		Lon:       input.Lon,
		UserAgent: input.UserAgent,
	}
	if ev.IPData == "" {
		ev.IPData = "null" // jsonb kolonu boş string kabul etmez
	}

	if code := strings.TrimSpace(input.TableCode); code != "" {
		ev.TableCode = &code
	}

	if input.Lat != nil && input.Lon != nil {
		var settings models.GeoSettings
		if err := s.db.First(&settings, "id = ?", models.GeoSettingsID).Error; err == nil {
			if ref, ok := geomath.ParseCoordinates(settings.MapsLocationRef); ok {
				d := geomath.HaversineKm(ref.Lat, ref.Lon, *input.Lat, *input.Lon)
				ev.DistanceKm = &d
				ev.IsGPSVerified = true
			}
		}
	}

	if err := s.db.Create(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// List olayları en yeniden eskiye döndürür.
func (s *Service) List(limit int) ([]models.ScanEvent, error) {
	if limit <= 0 || limit > 1000 {
		limit = 500
	}

	var events []models.ScanEvent
	err := s.db.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
