package models

import "time"

type NotificationType string

const (
	NotificationCallStaff   NotificationType = "call_staff"
	NotificationRequestBill NotificationType = "request_bill"
)

type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "pending"
	NotificationResolved NotificationStatus = "resolved"
)

type ServiceNotification struct {
	ID            uint               `gorm:"primaryKey"`
	TableCode     string             `gorm:"size:20;index;not null"`
	Type          NotificationType   `gorm:"size:20;not null"`
	Status        NotificationStatus `gorm:"size:20;index;not null;default:'pending'"`
	CustomerName  string             `gorm:"size:100"` // opsiyonel
	CustomerPhone string             `gorm:"size:30"`  // opsiyonel
	CreatedAt     time.Time          `gorm:"index"`
	ResolvedAt    *time.Time
}
