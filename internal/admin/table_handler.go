package admin

import (
	"fmt"
	"strings"

	"qrmenu-backend/internal/audit"
	"qrmenu-backend/internal/auth"
	"qrmenu-backend/internal/config"
	"qrmenu-backend/internal/database"
	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

type TableResponse struct {
	ID        uint   `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type CreateTableRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type UpdateTableRequest struct {
	Name *string `json:"name"`
}

// -------------------------
// Yardımcı: Kullanıcı bilgilerini al (audit için)
// -------------------------
func getUserInfo(c *fiber.Ctx) (uint, string, error) {
	userIDVal := c.Locals(auth.CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
	}

	return userID, user.Name, nil
}

// ----------------------------------------
// MASA CRUD
// ----------------------------------------

func CreateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Code = strings.ToUpper(strings.TrimSpace(body.Code))
		body.Name = strings.TrimSpace(body.Name)
		if body.Code == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Masa kodu ve adı boş olamaz")
		}
		if body.Code == models.RemoteTableCode {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kod rezervedir, başka bir kod seçin")
		}

		table := models.Table{
			Code:    body.Code,
			Name:    body.Name,
			QRToken: uuid.NewString(),
		}

		if err := database.DB.Create(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa oluşturulamadı (kod benzersiz olmalı)")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "table",
			EntityID:    table.ID,
			Action:      models.AuditActionCreate,
			Description: "Masa eklendi: " + table.Code,
			After:       table,
		})

		return c.Status(fiber.StatusCreated).JSON(TableResponse{
			ID:        table.ID,
			Code:      table.Code,
			Name:      table.Name,
			CreatedAt: table.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func ListTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tables []models.Table
		if err := database.DB.Order("code ASC").Find(&tables).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masalar okunamadı")
		}

		resp := make([]TableResponse, 0, len(tables))
		for _, t := range tables {
			resp = append(resp, TableResponse{
				ID:        t.ID,
				Code:      t.Code,
				Name:      t.Name,
				CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(resp)
	}
}

func UpdateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}
		before := table

		var body UpdateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		// Masa kodu değiştirilemez: geçmiş siparişler koda referans verir
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Masa adı boş olamaz")
			}
			table.Name = name
		}

		if err := database.DB.Save(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa güncellenemedi")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "table",
			EntityID:    table.ID,
			Action:      models.AuditActionUpdate,
			Description: "Masa güncellendi: " + table.Code,
			Before:      before,
			After:       table,
		})

		return c.JSON(TableResponse{
			ID:        table.ID,
			Code:      table.Code,
			Name:      table.Name,
			CreatedAt: table.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func DeleteTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		if err := database.DB.Delete(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa silinemedi")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "table",
			EntityID:    table.ID,
			Action:      models.AuditActionDelete,
			Description: "Masa silindi: " + table.Code,
			Before:      table,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/admin/tables/:id/qr?size=512 (admin)
// Masaya yapıştırılacak QR: müşteri menü linki + masa kodu + token.
func TableQRHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		size := c.QueryInt("size", 512)
		if size < 128 || size > 2048 {
			size = 512
		}

		var table models.Table
		if err := database.DB.First(&table, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		link := fmt.Sprintf("%s/m/%s?t=%s", strings.TrimRight(cfg.PublicBaseURL, "/"), table.Code, table.QRToken)

		png, err := qrcode.Encode(link, qrcode.Medium, size)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "QR üretilemedi")
		}

		c.Set("Content-Type", "image/png")
		c.Set("Content-Disposition", fmt.Sprintf(`inline; filename="masa_%s.png"`, table.Code))
		return c.Send(png)
	}
}

// GET /api/tables/:code (public)
// QR okutulunca müşteri arayüzü masayı doğrular.
func LookupTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
		if code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Masa kodu zorunlu")
		}

		var table models.Table
		if err := database.DB.First(&table, "code = ?", code).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		return c.JSON(fiber.Map{
			"code": table.Code,
			"name": table.Name,
		})
	}
}
