package order

import (
	"errors"
	"fmt"
	"strings"

	"qrmenu-backend/internal/models"
	"qrmenu-backend/internal/realtime"

	"gorm.io/gorm"
)

var (
	ErrEmptyOrder        = errors.New("sipariş sepeti boş")
	ErrMissingContact    = errors.New("isim ve telefon zorunlu")
	ErrInvalidQuantity   = errors.New("adet en az 1 olmalı")
	ErrUnknownMenuItem   = errors.New("menüde olmayan ürün")
	ErrItemUnavailable   = errors.New("ürün şu anda satışta değil")
	ErrUnknownTable      = errors.New("masa bulunamadı")
	ErrOrderNotFound     = errors.New("sipariş bulunamadı")
	ErrInvalidTransition = errors.New("geçersiz durum geçişi")
	ErrNotRemote         = errors.New("sipariş masa ataması beklemiyor")
)

// Service sipariş yaşam döngüsünün tek mutasyon yüzeyi. UI katmanı
// veritabanına doğrudan dokunmaz, sadece buradaki operasyonları çağırır.
type Service struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewService(db *gorm.DB, hub *realtime.Hub) *Service {
	return &Service{db: db, hub: hub}
}

type PlaceItem struct {
	MenuItemID uint
	Quantity   int
}

type PlaceInput struct {
	TableCode     string // masa kodu veya boş (boş = REQUEST)
	CustomerName  string
	CustomerPhone string
	Items         []PlaceItem
}

// Place yeni siparişi tek transaction içinde oluşturur: ya sipariş tüm
// kalemleriyle görünür olur ya da hiç oluşmaz, personel yarım kayıt görmez.
// İsim/fiyat menüden kopyalanır, toplam sunucuda hesaplanır.
func (s *Service) Place(input PlaceInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.CustomerPhone)
	if name == "" || phone == "" {
		return nil, ErrMissingContact
	}

	tableCode := strings.TrimSpace(input.TableCode)
	if tableCode == "" {
		tableCode = models.RemoteTableCode
	}

	for _, it := range input.Items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	var created models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if tableCode != models.RemoteTableCode {
			var table models.Table
			if err := tx.First(&table, "code = ?", tableCode).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownTable
				}
				return err
			}
		}

		ids := make([]uint, 0, len(input.Items))
		for _, it := range input.Items {
			ids = append(ids, it.MenuItemID)
		}

		var menuItems []models.MenuItem
		if err := tx.Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
			return err
		}

		byID := make(map[uint]models.MenuItem, len(menuItems))
		for _, mi := range menuItems {
			byID[mi.ID] = mi
		}

		orderItems := make([]models.OrderItem, 0, len(input.Items))
		for _, it := range input.Items {
			mi, ok := byID[it.MenuItemID]
			if !ok {
				return fmt.Errorf("%w: id=%d", ErrUnknownMenuItem, it.MenuItemID)
			}
			if !mi.Available {
				return fmt.Errorf("%w: %s", ErrItemUnavailable, mi.Name)
			}
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: mi.ID,
				Name:       mi.Name,
				Price:      mi.Price,
				Quantity:   it.Quantity,
			})
		}

		created = models.Order{
			TableCode:     tableCode,
			CustomerName:  name,
			CustomerPhone: phone,
			TotalAmount:   ComputeTotal(orderItems),
			Status:        models.OrderStatusPending,
			Items:         orderItems,
		}

		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish("placed", &created)
	return &created, nil
}

// Transition siparişi hedef duruma taşır. Aynı sipariş üstünde yarışan iki
// istek sırayla işlenir: UPDATE beklenen durumla şartlandığı için ikinci
// yazan ilkinin sonucunu görür ve ErrInvalidTransition alır, sessiz ezme yok.
func (s *Service) Transition(orderID uint, target models.OrderStatus) (*models.Order, error) {
	if !ValidStatus(target) {
		return nil, fmt.Errorf("%w: bilinmeyen durum %q", ErrInvalidTransition, target)
	}

	var ord models.Order
	if err := s.db.First(&ord, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !CanTransition(ord.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ord.Status, target)
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, ord.Status).
		Update("status", target)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Araya başka bir personel girmiş; güncel durumu raporla
		var current models.Order
		if err := s.db.First(&current, "id = ?", orderID).Error; err != nil {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("%w: sipariş bu arada %s durumuna geçti", ErrInvalidTransition, current.Status)
	}

	if err := s.db.Preload("Items").First(&ord, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	s.publish("status_changed", &ord)
	return &ord, nil
}

// AssignTable REQUEST durumundaki uzaktan siparişe gerçek masa bağlar.
// Guard yine iyimser: sipariş hâlâ REQUEST ise atama yapılır.
func (s *Service) AssignTable(orderID uint, tableCode string) (*models.Order, error) {
	tableCode = strings.TrimSpace(tableCode)
	if tableCode == "" || tableCode == models.RemoteTableCode {
		return nil, ErrUnknownTable
	}

	var table models.Table
	if err := s.db.First(&table, "code = ?", tableCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownTable
		}
		return nil, err
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND table_code = ?", orderID, models.RemoteTableCode).
		Update("table_code", table.Code)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var current models.Order
		if err := s.db.First(&current, "id = ?", orderID).Error; err != nil {
			return nil, ErrOrderNotFound
		}
		return nil, ErrNotRemote
	}

	var ord models.Order
	if err := s.db.Preload("Items").First(&ord, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	s.publish("table_assigned", &ord)
	return &ord, nil
}

// Remove siparişi kalemleriyle birlikte kalıcı siler. Geri dönüşü yok;
// onay sorusu çağıran arayüzün işi.
func (s *Service) Remove(orderID uint) error {
	var removed models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&removed, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&removed).Error
	})
	if err != nil {
		return err
	}

	s.publish("removed", &removed)
	return nil
}

type ListFilter struct {
	Status     models.OrderStatus // boş = hepsi
	TableCode  string             // boş = hepsi
	ActiveOnly bool               // terminal olmayanlar
}

func (s *Service) List(f ListFilter) ([]models.Order, error) {
	q := s.db.Preload("Items").Order("created_at DESC")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.TableCode != "" {
		q = q.Where("table_code = ?", f.TableCode)
	}
	if f.ActiveOnly {
		q = q.Where("status NOT IN ?", []models.OrderStatus{
			models.OrderStatusPaid,
			models.OrderStatusRejected,
			models.OrderStatusCancelled,
		})
	}

	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (s *Service) Get(orderID uint) (*models.Order, error) {
	var ord models.Order
	if err := s.db.Preload("Items").First(&ord, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &ord, nil
}

func (s *Service) publish(action string, ord *models.Order) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(realtime.Event{
		Topic:   realtime.TopicOrders,
		Action:  action,
		Payload: ord,
	})
}
