package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal durumdan çıkış yok.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// RemoteTableCode: masa QR'ı okutmadan verilen siparişlerin masa kodu.
// Personel masayı sonradan atayana kadar bu değerde kalır.
const RemoteTableCode = "REQUEST"

type Order struct {
	ID            uint        `gorm:"primaryKey"`
	TableCode     string      `gorm:"size:20;index;not null"` // masa kodu veya "REQUEST"
	CustomerName  string      `gorm:"size:100;not null"`
	CustomerPhone string      `gorm:"size:30;not null"`
	TotalAmount   float64     `gorm:"not null"` // her zaman sunucu tarafında hesaplanır
	Status        OrderStatus `gorm:"size:20;index;not null"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time   `gorm:"index"`
	UpdatedAt     time.Time
}

func (o *Order) Remote() bool {
	return o.TableCode == RemoteTableCode
}

// OrderItem: sipariş anındaki menü kopyası. Menü sonradan değişse bile
// isim/fiyat burada sabit kalır (sipariş bir fiş, fiş değişmez).
type OrderItem struct {
	ID         uint    `gorm:"primaryKey"`
	OrderID    uint    `gorm:"index;not null"`
	MenuItemID uint    `gorm:"not null"`
	Name       string  `gorm:"size:100;not null"`
	Price      float64 `gorm:"not null"`
	Quantity   int     `gorm:"not null"`
}
