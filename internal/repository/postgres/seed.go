package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rentwheels-backend/internal/logger"
)

// Default admin credentials seeded into an empty database.
const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
	seedAdminBalance  = 100000 // $1,000.00
)

// EnsureSeedData populates the reference tables and the default admin account
// when the database is empty. Safe to call on every startup.
func EnsureSeedData(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	logger.Info("Database tables are empty, initializing default data")

	seeds := []string{
		`INSERT INTO roles (name, description) VALUES
			('ADMIN', 'System Administrator'),
			('CUSTOMER', 'Regular Customer'),
			('OWNER', 'Vehicle Owner')
		ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO vehicle_statuses (name, description, is_available) VALUES
			('AVAILABLE', 'Available for rent', TRUE),
			('RENTED', 'Currently rented', FALSE),
			('MAINTENANCE', 'Under maintenance', FALSE)
		ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO vehicle_makes (name) VALUES
			('Toyota'), ('Honda'), ('Ford'), ('BMW'), ('Tesla'), ('Mercedes')
		ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO vehicle_colors (name) VALUES
			('White'), ('Black'), ('Blue'), ('Silver'), ('Red'), ('Gray')
		ON CONFLICT (name) DO NOTHING`,
	}
	for _, stmt := range seeds {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed reference data: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminQuery := `INSERT INTO users (username, password_hash, full_name, email, phone, role_id, wallet_balance_cents, active, created_on)
	          VALUES ($1, $2, 'System Admin', 'admin@rental.com', '1234567890', (SELECT id FROM roles WHERE name = 'ADMIN'), $3, TRUE, NOW())
	          ON CONFLICT (username) DO NOTHING`
	if _, err := db.ExecContext(ctx, adminQuery, seedAdminUsername, string(hash), seedAdminBalance); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.Info("Default data initialized", "admin_username", seedAdminUsername)
	return nil
}
