package main

import (
	"log"
	"strings"

	"qrmenu-backend/internal/admin"
	"qrmenu-backend/internal/analytics"
	"qrmenu-backend/internal/audit"
	"qrmenu-backend/internal/auth"
	"qrmenu-backend/internal/config"
	"qrmenu-backend/internal/dashboard"
	"qrmenu-backend/internal/database"
	"qrmenu-backend/internal/geofence"
	"qrmenu-backend/internal/menu"
	"qrmenu-backend/internal/models"
	"qrmenu-backend/internal/notification"
	"qrmenu-backend/internal/order"
	"qrmenu-backend/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Servis nesneleri: UI katmanı veriye sadece bunlar üzerinden dokunur
	hub := realtime.NewHub()
	guard := geofence.NewGuard(database.DB)
	orderSvc := order.NewService(database.DB, hub)
	notifSvc := notification.NewService(database.DB, hub)
	scanSvc := analytics.NewService(database.DB)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Müşteri tarafı (public)
	api.Get("/menu", menu.PublicMenuHandler())
	api.Get("/tables/:code", admin.LookupTableHandler())
	api.Post("/geo/check", geofence.CheckHandler(guard))
	api.Post("/orders", order.PlaceOrderHandler(orderSvc, guard))
	api.Get("/orders/:id", order.GetOrderHandler(orderSvc))
	api.Post("/notifications", notification.RaiseHandler(notifSvc))
	api.Post("/scans", analytics.RecordScanHandler(scanSvc))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Personel + admin: sipariş akışı
	staffRoutes := protected.Group("")
	staffRoutes.Use(auth.RequireRole(models.RoleAdmin, models.RoleStaff))

	staffRoutes.Get("/orders", order.ListOrdersHandler(orderSvc))
	staffRoutes.Put("/orders/:id/status", order.UpdateOrderStatusHandler(orderSvc))
	staffRoutes.Put("/orders/:id/table", order.AssignTableHandler(orderSvc))

	staffRoutes.Get("/notifications", notification.ListPendingHandler(notifSvc))
	staffRoutes.Put("/notifications/:id/resolve", notification.ResolveHandler(notifSvc))
	staffRoutes.Post("/notifications/resolve-all", notification.ResolveAllHandler(notifSvc))

	staffRoutes.Get("/dashboard/summary", dashboard.SummaryHandler(database.DB))
	staffRoutes.Get("/stream", realtime.StreamHandler(hub))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Menü yönetimi
	adminRoutes.Get("/menu", menu.ListMenuItemsHandler())
	adminRoutes.Post("/menu", menu.CreateMenuItemHandler())
	adminRoutes.Put("/menu/reorder", menu.ReorderMenuHandler())
	adminRoutes.Put("/menu/:id", menu.UpdateMenuItemHandler())
	adminRoutes.Delete("/menu/:id", menu.DeleteMenuItemHandler())
	adminRoutes.Post("/menu/:id/image", menu.SetMenuImageHandler(cfg))

	// Masa yönetimi
	adminRoutes.Post("/tables", admin.CreateTableHandler())
	adminRoutes.Get("/tables", admin.ListTablesHandler())
	adminRoutes.Put("/tables/:id", admin.UpdateTableHandler())
	adminRoutes.Delete("/tables/:id", admin.DeleteTableHandler())
	adminRoutes.Get("/tables/:id/qr", admin.TableQRHandler(cfg))

	// Geo ayarları
	adminRoutes.Get("/geo-settings", admin.GetGeoSettingsHandler())
	adminRoutes.Put("/geo-settings", admin.UpdateGeoSettingsHandler())

	// Personel hesapları
	adminRoutes.Post("/staff", admin.CreateStaffHandler())
	adminRoutes.Get("/staff", admin.ListStaffHandler())

	// Ziyaret analitiği
	adminRoutes.Get("/scans", analytics.ListScansHandler(scanSvc))
	adminRoutes.Get("/scans/summary", analytics.ScanSummaryHandler(scanSvc))

	// Sipariş silme (geçmiş temizliği, geri dönüşü yok)
	adminRoutes.Delete("/orders/:id", order.DeleteOrderHandler(orderSvc))

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
