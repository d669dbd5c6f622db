package audit

import (
	"qrmenu-backend/internal/database"
	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/audit-logs?entity=menu_item&limit=100 (admin)
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		q := database.DB.Order("created_at DESC").Limit(limit)
		if entity := c.Query("entity"); entity != "" {
			q = q.Where("entity_type = ?", entity)
		}

		var logs []models.AuditLog
		if err := q.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Loglar okunamadı")
		}

		return c.JSON(logs)
	}
}
