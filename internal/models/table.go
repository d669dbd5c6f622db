package models

import "time"

type Table struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:20;not null;uniqueIndex"` // QR içinde geçen kısa kod (örn: M5)
	Name      string `gorm:"size:100;not null"`
	QRToken   string `gorm:"size:64;uniqueIndex"` // QR linkini tahmin edilemez yapan token
	CreatedAt time.Time
	UpdatedAt time.Time
}
