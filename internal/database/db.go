package database

import (
	"log"

	"qrmenu-backend/internal/config"
	"qrmenu-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ServiceNotification{},
		&models.ScanEvent{},
		&models.GeoSettings{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Geo ayarları tek satır (id=1), yoksa boş değerlerle oluştur.
	// Boş kayıt = geofence kapalı, sistem ayarsız da çalışır.
	var settings models.GeoSettings
	if err := DB.FirstOrCreate(&settings, models.GeoSettings{ID: models.GeoSettingsID}).Error; err != nil {
		log.Fatalf("Geo ayar kaydı oluşturulamadı: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
