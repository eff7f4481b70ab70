package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"hostel-ledger-backend/internal/config"
	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/jobs"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository/postgres"
	"hostel-ledger-backend/internal/scheduler"
	"hostel-ledger-backend/internal/service"
	"hostel-ledger-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-dues-digest', 'take-monthly-snapshot', 'all-monthly')")
	monthFlag := flag.String("month", "", "Month for take-monthly-snapshot (yyyy-mm); defaults to the month that just ended")
	flag.Parse()

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
	logger.Info("Starting Hostel Ledger Cronjob Runner...", "log_level", cfg.Log.Level, "timezone", cfg.Server.Timezone)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	notifier, err := service.NewNotifier(cfg.Notify)
	if err != nil {
		logger.Error("Failed to initialize notifier", "error", err)
		log.Fatalf("Failed to initialize notifier: %v", err)
	}
	logger.Info("Notifier configured", "provider", cfg.Notify.Provider)

	dashboardService := service.NewDashboardService(
		store.RoomRepository,
		store.TenantRepository,
		store.RentPaymentRepository,
		store.MessPaymentRepository,
		store.DepositRepository,
	)

	paymentService := service.NewPaymentService(store.TenantRepository, store.RentPaymentRepository, store.MessPaymentRepository)
	depositService := service.NewDepositService(store.TenantRepository, store.DepositRepository)
	// Initialize report archive
	var archive storage.Archive
	if cfg.Storage.ReportDir != "" {
		localArchive, err := storage.NewLocalArchive(cfg.Storage.ReportDir)
		if err != nil {
			logger.Error("Failed to initialize report archive", "error", err)
			log.Fatalf("Failed to initialize report archive: %v", err)
		}
		archive = localArchive
		logger.Info("Archiving monthly reports", "dir", cfg.Storage.ReportDir)
	}
	reportService := service.NewReportService(dashboardService, paymentService, depositService, store.SnapshotRepository, archive)

	jobServices := &jobs.Services{
		Dashboard: dashboardService,
		Reports:   reportService,
		Notifier:  notifier,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, store.SnapshotRepository, archive, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if err := runJobOnce(jobRunner, *runOnce, *monthFlag); err != nil {
			logger.Error("Job execution failed", "job", *runOnce, "error", err)
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once
func runJobOnce(jobRunner *jobs.JobRunner, jobName, month string) error {
	switch jobName {
	case "send-dues-digest":
		return jobRunner.SendDuesDigest()
	case "take-monthly-snapshot":
		if month == "" {
			return jobRunner.TakeMonthlySnapshot()
		}
		m, err := domain.ParseMonth(month)
		if err != nil {
			return err
		}
		return jobRunner.TakeSnapshotFor(m)
	case "all-monthly":
		return jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-dues-digest\n")
		fmt.Printf("  - take-monthly-snapshot [-month yyyy-mm]\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
	return nil
}
