package main

import (
	"log"

	"emogo-backend/internal/config"
	"emogo-backend/internal/handlers"
	"emogo-backend/internal/metrics"
	"emogo-backend/internal/models"
	"emogo-backend/internal/repository"
	"emogo-backend/internal/services"
	"emogo-backend/internal/storage"

	_ "emogo-backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// @title EmoGo Backend API
// @version 1.0.0
// @description Mood and location journaling backend: video uploads, records, filters, stats and exports.
func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	vlogStore := InitVlogStore(cfg)

	m := metrics.NewMetrics()
	recordRepo := repository.NewRecordRepository(db)
	vlogService := services.NewVlogService(vlogStore, cfg.BaseURL, m)
	recordService := services.NewRecordService(recordRepo, vlogStore, m)
	exportService := services.NewExportService(recordRepo, vlogService, m)

	app := fiber.New()
	app.Use(cors.New())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	sys := handlers.NewSystemHandler(recordService, vlogStore)
	rh := handlers.NewRecordHandler(recordService)
	vh := handlers.NewVlogHandler(vlogService)
	eh := handlers.NewExportHandler(exportService)

	app.Get("/", sys.Root)
	app.Get("/health", sys.Health)

	app.Post("/upload/video", vh.UploadVideo)
	app.Post("/upload/record", rh.UploadRecord)
	app.Get("/vlogs/:filename", vh.ServeVlog)

	app.Get("/export", eh.Export)
	app.Get("/download/all", eh.DownloadAll)

	app.Get("/records/filter/mood", rh.FilterByMood)
	app.Get("/records/filter/stress", rh.FilterByStress)
	app.Get("/records/filter/date", rh.FilterByDate)
	app.Get("/records/filter/date-range", rh.FilterByDateRange)
	app.Get("/records/filter/all", rh.FilterAll)
	app.Get("/stats/summary", rh.StatsSummary)

	// The literal route must be registered before the param route so
	// "delete/all" is not captured as a record id.
	app.Delete("/records/delete/all", rh.DeleteAllRecords)
	app.Delete("/records/:record_id", rh.DeleteRecord)
	app.Delete("/videos/:filename", vh.DeleteVlog)

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	port := cfg.AppPort
	if port == "" {
		port = "8000"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Record{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitVlogStore(cfg *config.Config) storage.VlogStore {
	switch cfg.StorageBackend {
	case config.BackendMinio:
		store, err := storage.NewMinioStore(cfg)
		if err != nil {
			log.Fatalf("MinIO store initialization failed: %v", err)
		}
		return store
	default:
		store, err := storage.NewFileSystemStore(cfg.VlogDir)
		if err != nil {
			log.Fatalf("Vlog store initialization failed: %v", err)
		}
		return store
	}
}
