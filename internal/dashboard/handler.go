package dashboard

import (
	"time"

	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SummaryResponse struct {
	Date                 string      `json:"date"`
	TodaysRevenue        float64     `json:"todays_revenue"`
	ActiveOrders         int         `json:"active_orders"`
	PendingNotifications int64       `json:"pending_notifications"`
	TopItems             []ItemCount `json:"top_items"`
	RevenuePerHour       [24]float64 `json:"revenue_per_hour"`
}

// GET /api/dashboard/summary?top=5 (personel)
func SummaryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		topN := c.QueryInt("top", 5)
		now := time.Now()
		loc := now.Location()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

		// Günün siparişleri: ciro ve saatlik kovalar için yeterli
		var todays []models.Order
		if err := db.Where("created_at >= ?", dayStart).
			Order("created_at ASC, id ASC").
			Find(&todays).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler okunamadı")
		}

		// Aktif sipariş sayısı gün sınırına bağlı değil
		var active int64
		if err := db.Model(&models.Order{}).
			Where("status NOT IN ?", []models.OrderStatus{
				models.OrderStatusPaid,
				models.OrderStatusRejected,
				models.OrderStatusCancelled,
			}).Count(&active).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aktif siparişler sayılamadı")
		}

		var pendingNotifs int64
		if err := db.Model(&models.ServiceNotification{}).
			Where("status = ?", models.NotificationPending).
			Count(&pendingNotifs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirimler sayılamadı")
		}

		// En çok sipariş edilen ürünler tüm geçmiş üzerinden; eşitlik
		// politikası ilk görülme sırası olduğundan eskiden yeniye okunur.
		var all []models.Order
		if err := db.Preload("Items").
			Order("created_at ASC, id ASC").
			Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş geçmişi okunamadı")
		}

		return c.JSON(SummaryResponse{
			Date:                 dayStart.Format("2006-01-02"),
			TodaysRevenue:        TodaysRevenue(todays, now),
			ActiveOrders:         int(active),
			PendingNotifications: pendingNotifs,
			TopItems:             TopItems(all, topN),
			RevenuePerHour:       RevenuePerHour(todays),
		})
	}
}
