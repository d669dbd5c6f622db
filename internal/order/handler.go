package order

import (
	"errors"
	"fmt"
	"time"

	"qrmenu-backend/internal/geofence"
	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PlaceItemBody struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type PlaceOrderRequest struct {
	TableCode     string                 `json:"table_code"` // boş = masasız (REQUEST)
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone"`
	Items         []PlaceItemBody        `json:"items"`
	Position      *geofence.PositionBody `json:"position"` // nil = konum alınamadı
}

type OrderItemResponse struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	TableCode     string              `json:"table_code"`
	Remote        bool                `json:"remote"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	TotalAmount   float64             `json:"total_amount"`
	Status        models.OrderStatus  `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     string              `json:"created_at"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type AssignTableRequest struct {
	TableCode string `json:"table_code"`
}

func toResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		TableCode:     o.TableCode,
		Remote:        o.Remote(),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		Items:         items,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/orders (public)
// Geofence devredeyse konum kontrolünden geçmeyen istek siparişe dönüşmez.
func PlaceOrderHandler(svc *Service, guard *geofence.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PlaceOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		settings, err := guard.Settings()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geo ayarları okunamadı")
		}

		var pos *geofence.Position
		if body.Position != nil {
			pos = &geofence.Position{
				Lat:       body.Position.Lat,
				Lon:       body.Position.Lon,
				AccuracyM: body.Position.AccuracyM,
			}
		}

		verdict, err := geofence.CheckPlacement(settings, pos)
		if errors.Is(err, geofence.ErrLocationUnavailable) {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"Konum bilgisi alınamadı. Konum izni verip tekrar deneyin veya telefonla sipariş verin.")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Konum kontrolü yapılamadı")
		}
		if !verdict.Allowed {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("Servis alanı dışındasınız (%.1f km). Sipariş için telefonla ulaşabilirsiniz.", verdict.DistanceKm))
		}

		items := make([]PlaceItem, 0, len(body.Items))
		for _, it := range body.Items {
			items = append(items, PlaceItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
		}

		ord, err := svc.Place(PlaceInput{
			TableCode:     body.TableCode,
			CustomerName:  body.CustomerName,
			CustomerPhone: body.CustomerPhone,
			Items:         items,
		})
		if err != nil {
			return placeError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(ord))
	}
}

func placeError(err error) error {
	switch {
	case errors.Is(err, ErrEmptyOrder):
		return fiber.NewError(fiber.StatusBadRequest, "Sepet boş, ürün ekleyin")
	case errors.Is(err, ErrMissingContact):
		return fiber.NewError(fiber.StatusBadRequest, "İsim ve telefon zorunlu")
	case errors.Is(err, ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, "Ürün adedi en az 1 olmalı")
	case errors.Is(err, ErrUnknownMenuItem):
		return fiber.NewError(fiber.StatusBadRequest, "Sepette menüde olmayan ürün var")
	case errors.Is(err, ErrItemUnavailable):
		return fiber.NewError(fiber.StatusConflict, "Sepetteki bir ürün şu anda satışta değil")
	case errors.Is(err, ErrUnknownTable):
		return fiber.NewError(fiber.StatusBadRequest, "Masa bulunamadı, QR kodu tekrar okutun")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
	}
}

// GET /api/orders/:id (public, sipariş takibi)
func GetOrderHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		ord, err := svc.Get(uint(id))
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş okunamadı")
		}

		return c.JSON(toResponse(ord))
	}
}

// GET /api/orders?status=pending&table=M5&active=1 (personel)
func ListOrdersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := ListFilter{
			Status:     models.OrderStatus(c.Query("status")),
			TableCode:  c.Query("table"),
			ActiveOnly: c.Query("active") == "1",
		}
		if f.Status != "" && !ValidStatus(f.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz durum filtresi")
		}

		orders, err := svc.List(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler okunamadı")
		}

		resp := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toResponse(&orders[i]))
		}
		return c.JSON(resp)
	}
}

// PUT /api/orders/:id/status (personel)
func UpdateOrderStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		ord, err := svc.Transition(uint(id), body.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			case errors.Is(err, ErrInvalidTransition):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Durum güncellenemedi")
			}
		}

		return c.JSON(toResponse(ord))
	}
}

// PUT /api/orders/:id/table (personel, REQUEST siparişine masa atama)
func AssignTableHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body AssignTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		ord, err := svc.AssignTable(uint(id), body.TableCode)
		if err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			case errors.Is(err, ErrUnknownTable):
				return fiber.NewError(fiber.StatusBadRequest, "Masa bulunamadı")
			case errors.Is(err, ErrNotRemote):
				return fiber.NewError(fiber.StatusConflict, "Sipariş masa ataması beklemiyor")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Masa atanamadı")
			}
		}

		return c.JSON(toResponse(ord))
	}
}

// DELETE /api/orders/:id (sadece admin, geçmiş temizliği)
func DeleteOrderHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		if err := svc.Remove(uint(id)); err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
