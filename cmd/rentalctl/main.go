package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"rentwheels-backend/internal/config"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository/postgres"
	"rentwheels-backend/internal/security"
	"rentwheels-backend/internal/service"
	"rentwheels-backend/internal/shell"
	"rentwheels-backend/internal/status"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Local overrides from .env, ignored when absent
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentWheels console...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	ctx := context.Background()

	// Seed lookup tables and the default admin on an empty database
	if err := postgres.EnsureSeedData(ctx, db); err != nil {
		logger.Error("Failed to seed database", "error", err)
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db, cfg.Billing.OwnerSharePercent)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Secret, cfg.Session.ExpiryMinutes)

	// Initialize Services
	authService := service.NewAuthService(store.UserRepository, store.AuditRepository, tokenManager)
	vehicleService := service.NewVehicleService(store.VehicleRepository, store.AuditRepository)
	rentalService := service.NewRentalService(store.RentalRepository, store.VehicleRepository, store.AuditRepository)
	paymentService := service.NewPaymentService(store.UserRepository, store.WalletRepository, store.AuditRepository)
	adminService := service.NewAdminService(store.UserRepository, store.StatsRepository, store.AuditRepository)

	// Optional status server next to the shell
	if cfg.Server.StatusAddr != "" {
		statusServer := status.NewServer(db, store.StatsRepository)
		go func() {
			if err := statusServer.ListenAndServe(cfg.Server.StatusAddr); err != nil {
				logger.Error("Status server error", "error", err)
			}
		}()
	}

	// Run the interactive shell on stdin/stdout
	console := shell.New(
		authService,
		vehicleService,
		rentalService,
		paymentService,
		adminService,
		db.PingContext,
		os.Stdin,
		os.Stdout,
	)
	if err := console.Run(ctx); err != nil {
		logger.Error("Console session failed", "error", err)
		log.Fatalf("Console session failed: %v", err)
	}
}
