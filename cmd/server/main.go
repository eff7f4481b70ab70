package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "hostel-ledger-backend/internal/api/http"
	"hostel-ledger-backend/internal/config"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository/postgres"
	"hostel-ledger-backend/internal/service"
	"hostel-ledger-backend/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// A missing .env is fine; the environment may be set some other way.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Failed to read .env: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hostel Ledger Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "timezone", cfg.Server.Timezone)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(cfg.GetDatabaseConnectionString()); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	roomSvc := service.NewRoomService(store.RoomRepository)
	tenantSvc := service.NewTenantService(
		store.TenantRepository,
		store.RoomRepository,
		store.RentPaymentRepository,
		store.MessPaymentRepository,
		store.DepositRepository,
	)
	paymentSvc := service.NewPaymentService(store.TenantRepository, store.RentPaymentRepository, store.MessPaymentRepository)
	depositSvc := service.NewDepositService(store.TenantRepository, store.DepositRepository)
	dashboardSvc := service.NewDashboardService(
		store.RoomRepository,
		store.TenantRepository,
		store.RentPaymentRepository,
		store.MessPaymentRepository,
		store.DepositRepository,
	)

	// Serve archived workbooks when the cronjob shares the report directory
	var archive storage.Archive
	if cfg.Storage.ReportDir != "" {
		localArchive, err := storage.NewLocalArchive(cfg.Storage.ReportDir)
		if err != nil {
			logger.Error("Failed to initialize report archive", "error", err)
			log.Fatalf("Failed to initialize report archive: %v", err)
		}
		archive = localArchive
	}
	reportSvc := service.NewReportService(dashboardSvc, paymentSvc, depositSvc, store.SnapshotRepository, archive)

	handler := httpapi.NewHandler(
		httpapi.Services{
			Rooms:     roomSvc,
			Tenants:   tenantSvc,
			Payments:  paymentSvc,
			Deposits:  depositSvc,
			Dashboard: dashboardSvc,
			Reports:   reportSvc,
		},
		httpapi.WithLocation(cfg.Location()),
		httpapi.WithHealthCheck(db.PingContext),
	)

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
