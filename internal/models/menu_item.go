package models

import "time"

type MenuItem struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;not null"`
	Description   string  `gorm:"size:500"`
	Price         float64 `gorm:"not null"` // her zaman > 0
	Category      string  `gorm:"size:50;index;not null"`
	IsVegetarian  bool    `gorm:"not null;default:false"`
	IsSpicy       bool    `gorm:"not null;default:false"`
	IsChefSpecial bool    `gorm:"not null;default:false"`
	Available     bool    `gorm:"not null;default:true"`
	// SortOrder nil ise ürün listede en sona düşer. 0 geçerli ve en öncelikli
	// sıradır, nil ile karıştırılmamalı.
	SortOrder *int    `gorm:"column:sort_order"`
	ImageURL  string  `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
