package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// statsTables is the fixed set of tables surfaced in the status view.
var statsTables = []string{"users", "vehicles", "rentals", "wallet_transactions", "audit_events"}

func (r *statsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{TableCounts: make(map[string]int64, len(statsTables))}

	for _, table := range statsTables {
		var count int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats.TableCounts[table] = count
	}

	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM wallet_transactions WHERE type = $1`
	if err := r.db.QueryRowContext(ctx, query, domain.TransactionTypeAdminCommission).Scan(&stats.TotalCommissionCents); err != nil {
		return nil, err
	}

	return stats, nil
}
