package menu

import (
	"strings"

	"qrmenu-backend/internal/audit"
	"qrmenu-backend/internal/auth"
	"qrmenu-backend/internal/config"
	"qrmenu-backend/internal/database"
	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateMenuItemRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	IsVegetarian  bool    `json:"is_vegetarian"`
	IsSpicy       bool    `json:"is_spicy"`
	IsChefSpecial bool    `json:"is_chef_special"`
	Available     *bool   `json:"available"`  // nil = true
	SortOrder     *int    `json:"sort_order"` // nil = sırasız (en sonda)
}

type UpdateMenuItemRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	Category      *string  `json:"category"`
	IsVegetarian  *bool    `json:"is_vegetarian"`
	IsSpicy       *bool    `json:"is_spicy"`
	IsChefSpecial *bool    `json:"is_chef_special"`
	Available     *bool    `json:"available"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

type ReorderItem struct {
	ID        uint `json:"id"`
	SortOrder *int `json:"sort_order"` // nil göndermek sıralamayı kaldırır
}

type SetImageRequest struct {
	URL string `json:"url"`
}

type MenuItemResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	IsVegetarian  bool    `json:"is_vegetarian"`
	IsSpicy       bool    `json:"is_spicy"`
	IsChefSpecial bool    `json:"is_chef_special"`
	Available     bool    `json:"available"`
	SortOrder     *int    `json:"sort_order"`
	ImageURL      string  `json:"image_url,omitempty"`
}

func toResponse(m *models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		Category:      m.Category,
		IsVegetarian:  m.IsVegetarian,
		IsSpicy:       m.IsSpicy,
		IsChefSpecial: m.IsChefSpecial,
		Available:     m.Available,
		SortOrder:     m.SortOrder,
		ImageURL:      m.ImageURL,
	}
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

// GET /api/menu (public)
// Sadece satıştaki ürünler, vitrin sırasında.
func PublicMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.MenuItem
		q := database.DB.Where("available = ?", true)
		if cat := c.Query("category"); cat != "" {
			q = q.Where("category = ?", cat)
		}
		if err := q.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü okunamadı")
		}

		SortForDisplay(items)

		resp := make([]MenuItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toResponse(&items[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/admin/menu (admin, satışta olmayanlar dahil)
func ListMenuItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.MenuItem
		if err := database.DB.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü okunamadı")
		}

		SortForDisplay(items)

		resp := make([]MenuItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toResponse(&items[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/admin/menu (admin)
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı boş olamaz")
		}
		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori boş olamaz")
		}
		if body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat 0'dan büyük olmalı")
		}

		item := models.MenuItem{
			Name:          body.Name,
			Description:   strings.TrimSpace(body.Description),
			Price:         body.Price,
			Category:      body.Category,
			IsVegetarian:  body.IsVegetarian,
			IsSpicy:       body.IsSpicy,
			IsChefSpecial: body.IsChefSpecial,
			Available:     true,
			SortOrder:     body.SortOrder,
		}
		if body.Available != nil {
			item.Available = *body.Available
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: "Menü ürünü eklendi: " + item.Name,
			After:       item,
		})

		return c.Status(fiber.StatusCreated).JSON(toResponse(&item))
	}
}

// PUT /api/admin/menu/:id (admin)
// Ürün fiyatı değişse bile geçmiş siparişlerdeki kopyalar etkilenmez.
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		before := item

		var body UpdateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ürün adı boş olamaz")
			}
			item.Name = name
		}
		if body.Description != nil {
			item.Description = strings.TrimSpace(*body.Description)
		}
		if body.Price != nil {
			if *body.Price <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat 0'dan büyük olmalı")
			}
			item.Price = *body.Price
		}
		if body.Category != nil {
			cat := strings.TrimSpace(*body.Category)
			if cat == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kategori boş olamaz")
			}
			item.Category = cat
		}
		if body.IsVegetarian != nil {
			item.IsVegetarian = *body.IsVegetarian
		}
		if body.IsSpicy != nil {
			item.IsSpicy = *body.IsSpicy
		}
		if body.IsChefSpecial != nil {
			item.IsChefSpecial = *body.IsChefSpecial
		}
		if body.Available != nil {
			item.Available = *body.Available
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: "Menü ürünü güncellendi: " + item.Name,
			Before:      before,
			After:       item,
		})

		return c.JSON(toResponse(&item))
	}
}

// DELETE /api/admin/menu/:id (admin)
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionDelete,
			Description: "Menü ürünü silindi: " + item.Name,
			Before:      item,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PUT /api/admin/menu/reorder (admin)
// Sürükle-bırak sonrası yeni sıralamayı toplu yazar.
func ReorderMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReorderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sıralanacak ürün yok")
		}

		for _, it := range body.Items {
			res := database.DB.Model(&models.MenuItem{}).
				Where("id = ?", it.ID).
				Update("sort_order", it.SortOrder)
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sıralama kaydedilemedi")
			}
		}

		return c.JSON(fiber.Map{"updated": len(body.Items)})
	}
}

// POST /api/admin/menu/:id/image (admin)
// Dış URL'deki görseli indirip lokalde saklar, ürüne yolunu yazar.
func SetMenuImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body SetImageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		path, err := DownloadMenuImage(item.ID, body.URL, cfg.MenuImagePath)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Görsel indirilemedi: "+err.Error())
		}

		item.ImageURL = path
		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(toResponse(&item))
	}
}
