package analytics

import (
	"errors"
	"time"

	"qrmenu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecordScanRequest struct {
	SessionID string          `json:"session_id"`
	Type      models.ScanType `json:"type"` // app_qr | table_qr | manual
	TableCode string          `json:"table_code"`
	IPData    string          `json:"ip_data"` // istemcinin IP-geo servisinden aldığı ham JSON
	Lat       *float64        `json:"lat"`
	Lon       *float64        `json:"lon"`
}

type ScanEventResponse struct {
	ID            uint            `json:"id"`
	SessionID     string          `json:"session_id"`
	Type          models.ScanType `json:"type"`
	TableCode     *string         `json:"table_code,omitempty"`
	DistanceKm    *float64        `json:"distance_km,omitempty"`
	IsGPSVerified bool            `json:"is_gps_verified"`
	UserAgent     string          `json:"user_agent"`
	CreatedAt     string          `json:"created_at"`
}

func toResponse(ev *models.ScanEvent) ScanEventResponse {
	return ScanEventResponse{
		ID:            ev.ID,
		SessionID:     ev.SessionID,
		Type:          ev.Type,
		TableCode:     ev.TableCode,
		DistanceKm:    ev.DistanceKm,
		IsGPSVerified: ev.IsGPSVerified,
		UserAgent:     ev.UserAgent,
		CreatedAt:     ev.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/scans (public, her sayfa girişinde)
func RecordScanHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordScanRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		ev, err := svc.RecordScan(RecordInput{
			SessionID: body.SessionID,
			Type:      body.Type,
			TableCode: body.TableCode,
			IP:        c.IP(),
			IPData:    body.IPData,
			Lat:       body.Lat,
			Lon:       body.Lon,
			UserAgent: c.Get("User-Agent"),
		})
		if err != nil {
			if errors.Is(err, ErrUnknownScanType) {
				return fiber.NewError(fiber.StatusBadRequest, "Tarama tipi app_qr, table_qr veya manual olmalı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ziyaret kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(ev))
	}
}

// GET /api/admin/scans?limit=200&dedupe=1 (admin)
// dedupe=1: ziyaretçi başına en son olay (liste zaten en yeniden eskiye)
func ListScansHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.List(c.QueryInt("limit"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ziyaretler okunamadı")
		}

		if c.Query("dedupe") == "1" {
			events = DedupeBySession(events)
		}

		resp := make([]ScanEventResponse, 0, len(events))
		for i := range events {
			resp = append(resp, toResponse(&events[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/admin/scans/summary (admin)
func ScanSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.List(c.QueryInt("limit"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ziyaretler okunamadı")
		}

		return c.JSON(Classify(events))
	}
}
