package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/auth"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catalog"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catering"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/content"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/db"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/middleware"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/notify"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/order"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/settings"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── MAIL ─────────────────────────
	var sender notify.Sender = notify.LogSender{}
	if smtp := notify.NewSMTPSenderFromEnv(); smtp != nil {
		sender = smtp
	}
	mailer, err := notify.NewMailer(sender)
	if err != nil {
		log.Fatal("❌ Mail templates failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	cateringRepo := catering.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	settingsRepo := settings.NewPostgresRepository(pgDB)
	contentRepo := content.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	cateringService := catering.NewService(cateringRepo, catalogService)
	settingsService := settings.NewService(settingsRepo)
	contentService := content.NewService(contentRepo)
	orderService := order.NewService(orderRepo, catalogService, settingsService, mailer)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	adminCatalogHandler := catalog.NewAdminHandler(catalogService)
	cateringHandler := catering.NewHandler(cateringService)
	adminCateringHandler := catering.NewAdminHandler(cateringService)
	orderHandler := order.NewHandler(orderService)
	adminOrderHandler := order.NewAdminHandler(orderService)
	settingsHandler := settings.NewHandler(settingsService)
	contentHandler := content.NewHandler(contentService)
	adminContentHandler := content.NewAdminHandler(contentService)
	uploadHandler := storage.NewHandler(r2Client)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	r.GET("/menu", catalogHandler.Menu)
	r.GET("/menu/items/:id", catalogHandler.GetItem)
	r.GET("/sauces", catalogHandler.Sauces)

	r.GET("/catering", cateringHandler.List)
	r.GET("/catering/:slug", cateringHandler.Get)
	r.POST("/catering/:slug/validate", cateringHandler.Validate)

	r.POST("/orders", orderHandler.Submit)
	r.GET("/orders/:id", orderHandler.Get)

	r.GET("/settings/:key", settingsHandler.Get)
	r.GET("/banners", contentHandler.Banners)
	r.GET("/notices", contentHandler.Notices)
	r.GET("/slides", contentHandler.Slides)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		// Menu items
		admin.GET("/menu-items", adminCatalogHandler.ListItems)
		admin.POST("/menu-items", adminCatalogHandler.CreateItem)
		admin.PUT("/menu-items/:id", adminCatalogHandler.UpdateItem)
		admin.DELETE("/menu-items/:id", adminCatalogHandler.DeleteItem)

		// Categories
		admin.GET("/categories", adminCatalogHandler.ListCategories)
		admin.POST("/categories", adminCatalogHandler.CreateCategory)
		admin.PUT("/categories/:id", adminCatalogHandler.UpdateCategory)
		admin.DELETE("/categories/:id", adminCatalogHandler.DeleteCategory)

		// Sauces
		admin.GET("/sauces", adminCatalogHandler.ListSauces)
		admin.POST("/sauces", adminCatalogHandler.CreateSauce)
		admin.PUT("/sauces/:id", adminCatalogHandler.UpdateSauce)
		admin.DELETE("/sauces/:id", adminCatalogHandler.DeleteSauce)

		// Catering packages
		admin.GET("/catering", adminCateringHandler.List)
		admin.POST("/catering", adminCateringHandler.Create)
		admin.PUT("/catering/:id", adminCateringHandler.Update)
		admin.DELETE("/catering/:id", adminCateringHandler.Delete)

		// Orders
		admin.GET("/orders", adminOrderHandler.List)
		admin.GET("/orders/:id", adminOrderHandler.Get)
		admin.PUT("/orders/:id/status", adminOrderHandler.UpdateStatus)

		// Banners / notices / slides
		admin.GET("/banners", adminContentHandler.ListBanners)
		admin.POST("/banners", adminContentHandler.CreateBanner)
		admin.PUT("/banners/:id", adminContentHandler.UpdateBanner)
		admin.DELETE("/banners/:id", adminContentHandler.DeleteBanner)

		admin.GET("/notices", adminContentHandler.ListNotices)
		admin.POST("/notices", adminContentHandler.CreateNotice)
		admin.PUT("/notices/:id", adminContentHandler.UpdateNotice)
		admin.DELETE("/notices/:id", adminContentHandler.DeleteNotice)

		admin.GET("/slides", adminContentHandler.ListSlides)
		admin.POST("/slides", adminContentHandler.CreateSlide)
		admin.PUT("/slides/:id", adminContentHandler.UpdateSlide)
		admin.DELETE("/slides/:id", adminContentHandler.DeleteSlide)

		// Settings + uploads
		admin.PUT("/settings/:key", settingsHandler.Set)
		admin.POST("/uploads", uploadHandler.Upload)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
