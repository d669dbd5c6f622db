package admin

import (
	"strings"

	"qrmenu-backend/internal/audit"
	"qrmenu-backend/internal/database"
	"qrmenu-backend/internal/geomath"
	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type GeoSettingsResponse struct {
	MapsLocationRef  string  `json:"maps_location_ref"`
	GeoRadiusKm      float64 `json:"geo_radius_km"`
	CallStaffRadiusM float64 `json:"call_staff_radius_m"`
	RefValid         bool    `json:"ref_valid"` // referans çözülebiliyor mu
}

type UpdateGeoSettingsRequest struct {
	MapsLocationRef  *string  `json:"maps_location_ref"`
	GeoRadiusKm      *float64 `json:"geo_radius_km"`
	CallStaffRadiusM *float64 `json:"call_staff_radius_m"`
}

func toGeoResponse(s *models.GeoSettings) GeoSettingsResponse {
	_, ok := geomath.ParseCoordinates(s.MapsLocationRef)
	return GeoSettingsResponse{
		MapsLocationRef:  s.MapsLocationRef,
		GeoRadiusKm:      s.GeoRadiusKm,
		CallStaffRadiusM: s.CallStaffRadiusM,
		RefValid:         ok,
	}
}

// GET /api/admin/geo-settings (admin)
func GetGeoSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s models.GeoSettings
		if err := database.DB.First(&s, "id = ?", models.GeoSettingsID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geo ayarları okunamadı")
		}

		return c.JSON(toGeoResponse(&s))
	}
}

// PUT /api/admin/geo-settings (admin)
// Referans boş bırakılabilir: geofence bilinçli olarak kapatılmış olur.
func UpdateGeoSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		var s models.GeoSettings
		if err := database.DB.First(&s, "id = ?", models.GeoSettingsID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geo ayarları okunamadı")
		}
		before := s

		var body UpdateGeoSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.MapsLocationRef != nil {
			ref := strings.TrimSpace(*body.MapsLocationRef)
			if ref != "" {
				if _, ok := geomath.ParseCoordinates(ref); !ok {
					return fiber.NewError(fiber.StatusBadRequest, "Konum referansı 'enlem,boylam' formatında olmalı")
				}
			}
			s.MapsLocationRef = ref
		}
		if body.GeoRadiusKm != nil {
			if *body.GeoRadiusKm < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Yarıçap negatif olamaz")
			}
			s.GeoRadiusKm = *body.GeoRadiusKm
		}
		if body.CallStaffRadiusM != nil {
			if *body.CallStaffRadiusM < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Yarıçap negatif olamaz")
			}
			s.CallStaffRadiusM = *body.CallStaffRadiusM
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geo ayarları kaydedilemedi")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "geo_settings",
			EntityID:    s.ID,
			Action:      models.AuditActionUpdate,
			Description: "Geo ayarları güncellendi",
			Before:      before,
			After:       s,
		})

		return c.JSON(toGeoResponse(&s))
	}
}
