package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentwheels-backend/internal/repository/postgres"
)

func TestStatsRepository_Collect(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStatsRepository(db)
	ctx := context.Background()

	for _, table := range []string{"users", "vehicles", "rentals", "wallet_transactions", "audit_events"} {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM " + table).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	}
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount_cents\\), 0\\) FROM wallet_transactions").
		WithArgs("ADMIN_COMMISSION").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(4500)))

	stats, err := repo.Collect(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TableCounts["rentals"])
	assert.Equal(t, int64(4500), stats.TotalCommissionCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
