package notification

import (
	"errors"
	"strings"
	"time"

	"qrmenu-backend/internal/models"
	"qrmenu-backend/internal/realtime"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("bildirim bulunamadı")
	ErrUnknownType  = errors.New("bilinmeyen bildirim tipi")
	ErrMissingTable = errors.New("masa kodu zorunlu")
)

type Service struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewService(db *gorm.DB, hub *realtime.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// Raise müşteri aksiyonuyla pending bildirim oluşturur.
func (s *Service) Raise(tableCode string, typ models.NotificationType, customerName, customerPhone string) (*models.ServiceNotification, error) {
	tableCode = strings.TrimSpace(tableCode)
	if tableCode == "" {
		return nil, ErrMissingTable
	}
	if typ != models.NotificationCallStaff && typ != models.NotificationRequestBill {
		return nil, ErrUnknownType
	}

	n := models.ServiceNotification{
		TableCode:     tableCode,
		Type:          typ,
		Status:        models.NotificationPending,
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: strings.TrimSpace(customerPhone),
	}

	if err := s.db.Create(&n).Error; err != nil {
		return nil, err
	}

	s.publish("raised", &n)
	return &n, nil
}

// Resolve bildirimi çözülmüş işaretler. İdempotent: zaten çözülmüşse
// hata değil no-op. İki personelin aynı anda kapatması sorun çıkarmaz.
func (s *Service) Resolve(id uint) error {
	now := time.Now()
	res := s.db.Model(&models.ServiceNotification{}).
		Where("id = ? AND status = ?", id, models.NotificationPending).
		Updates(map[string]any{"status": models.NotificationResolved, "resolved_at": now})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var n models.ServiceNotification
		if err := s.db.First(&n, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// Kayıt var ama pending değil: başka biri çözmüş, sorun yok
		return nil
	}

	s.publish("resolved", &models.ServiceNotification{ID: id, Status: models.NotificationResolved, ResolvedAt: &now})
	return nil
}

// ResolveAll o anda bekleyen her bildirimi çözer. Sınır, çağrı anındaki
// zaman damgası: işlem sürerken gelen yeni bildirimler kapsam dışında
// kalır, sessizce yutulmazlar.
func (s *Service) ResolveAll() (int64, error) {
	cutoff := time.Now()
	res := s.db.Model(&models.ServiceNotification{}).
		Where("status = ? AND created_at <= ?", models.NotificationPending, cutoff).
		Updates(map[string]any{"status": models.NotificationResolved, "resolved_at": cutoff})
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		s.publish("resolved_all", nil)
	}
	return res.RowsAffected, nil
}

// Pending bekleyen bildirimleri en yeniden eskiye listeler.
// tableCode boşsa tüm masalar.
func (s *Service) Pending(tableCode string) ([]models.ServiceNotification, error) {
	q := s.db.Where("status = ?", models.NotificationPending).Order("created_at DESC")
	if tableCode != "" {
		q = q.Where("table_code = ?", tableCode)
	}

	var list []models.ServiceNotification
	err := q.Find(&list).Error
	return list, err
}

func (s *Service) publish(action string, n *models.ServiceNotification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(realtime.Event{
		Topic:   realtime.TopicNotifications,
		Action:  action,
		Payload: n,
	})
}
