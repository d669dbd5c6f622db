package notification

import (
	"errors"
	"time"

	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RaiseRequest struct {
	TableCode     string                  `json:"table_code"`
	Type          models.NotificationType `json:"type"` // call_staff | request_bill
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone"`
}

type NotificationResponse struct {
	ID            uint                      `json:"id"`
	TableCode     string                    `json:"table_code"`
	Type          models.NotificationType   `json:"type"`
	Status        models.NotificationStatus `json:"status"`
	CustomerName  string                    `json:"customer_name,omitempty"`
	CustomerPhone string                    `json:"customer_phone,omitempty"`
	CreatedAt     string                    `json:"created_at"`
}

func toResponse(n *models.ServiceNotification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		TableCode:     n.TableCode,
		Type:          n.Type,
		Status:        n.Status,
		CustomerName:  n.CustomerName,
		CustomerPhone: n.CustomerPhone,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/notifications (public)
func RaiseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RaiseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		n, err := svc.Raise(body.TableCode, body.Type, body.CustomerName, body.CustomerPhone)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingTable):
				return fiber.NewError(fiber.StatusBadRequest, "Masa kodu zorunlu")
			case errors.Is(err, ErrUnknownType):
				return fiber.NewError(fiber.StatusBadRequest, "Bildirim tipi call_staff veya request_bill olmalı")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Bildirim oluşturulamadı")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(n))
	}
}

// GET /api/notifications?table=M5 (personel)
func ListPendingHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.Pending(c.Query("table"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirimler okunamadı")
		}

		resp := make([]NotificationResponse, 0, len(list))
		for i := range list {
			resp = append(resp, toResponse(&list[i]))
		}
		return c.JSON(resp)
	}
}

// PUT /api/notifications/:id/resolve (personel)
func ResolveHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz bildirim id")
		}

		if err := svc.Resolve(uint(id)); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bildirim bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirim çözülemedi")
		}

		return c.JSON(fiber.Map{"status": models.NotificationResolved})
	}
}

// POST /api/notifications/resolve-all (personel, "Tümünü Temizle")
func ResolveAllHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := svc.ResolveAll()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirimler çözülemedi")
		}

		return c.JSON(fiber.Map{"resolved": count})
	}
}
