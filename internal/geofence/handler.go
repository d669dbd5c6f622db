package geofence

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type PositionBody struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	AccuracyM float64 `json:"accuracy_m"`
}

type CheckRequest struct {
	Position *PositionBody `json:"position"` // nil = konum alınamadı
}

type CheckResponse struct {
	OrderChecked     bool     `json:"order_checked"`
	OrderAllowed     bool     `json:"order_allowed"`
	CallStaffChecked bool     `json:"call_staff_checked"`
	CallStaffAllowed bool     `json:"call_staff_allowed"`
	DistanceKm       *float64 `json:"distance_km,omitempty"`
}

// POST /api/geo/check
// Müşteri arayüzü sayfa açılışında çağırır: sipariş butonu ve
// "garson çağır" butonu bu cevaba göre açılıp kapanır.
func CheckHandler(g *Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CheckRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		settings, err := g.Settings()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geo ayarları okunamadı")
		}

		var pos *Position
		if body.Position != nil {
			pos = &Position{Lat: body.Position.Lat, Lon: body.Position.Lon, AccuracyM: body.Position.AccuracyM}
		}

		// İki eşik bağımsız değerlendirilir. Konum yokken devredeki kontrol
		// "kapalı buton" demektir, hata cevabı değil; müşteri telefonla
		// ulaşabilir.
		resp := CheckResponse{}

		orderVerdict, err := CheckPlacement(settings, pos)
		if errors.Is(err, ErrLocationUnavailable) {
			resp.OrderChecked = true
			resp.OrderAllowed = false
		} else {
			resp.OrderChecked = orderVerdict.Checked
			resp.OrderAllowed = orderVerdict.Allowed
			if orderVerdict.Checked {
				d := orderVerdict.DistanceKm
				resp.DistanceKm = &d
			}
		}

		staffVerdict, err := CheckCallStaff(settings, pos)
		if errors.Is(err, ErrLocationUnavailable) {
			resp.CallStaffChecked = true
			resp.CallStaffAllowed = false
		} else {
			resp.CallStaffChecked = staffVerdict.Checked
			resp.CallStaffAllowed = staffVerdict.Allowed
			if staffVerdict.Checked && resp.DistanceKm == nil {
				d := staffVerdict.DistanceKm
				resp.DistanceKm = &d
			}
		}

		return c.JSON(resp)
	}
}
