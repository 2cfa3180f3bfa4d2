package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

type lookupRepository struct {
	db *sql.DB
}

func NewLookupRepository(db *sql.DB) repository.LookupRepository {
	return &lookupRepository{db: db}
}

func lookupTable(kind repository.LookupKind) (string, error) {
	switch kind {
	case repository.LookupMake:
		return "vehicle_makes", nil
	case repository.LookupColor:
		return "vehicle_colors", nil
	}
	return "", fmt.Errorf("unknown lookup kind %q", kind)
}

// GetOrCreate relies on the unique constraint on name: the no-op conflict
// update makes RETURNING yield the existing row's id, so two concurrent
// inserts of the same new value end up with the same id.
func (r *lookupRepository) GetOrCreate(ctx context.Context, kind repository.LookupKind, name string) (int32, error) {
	table, err := lookupTable(kind)
	if err != nil {
		return 0, err
	}

	var id int32
	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1)
	          ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id`, table)
	logger.DatabaseCall("lookup.get_or_create", query, "table", table, "name", name)
	err = r.db.QueryRowContext(ctx, query, name).Scan(&id)
	logger.DatabaseResult("lookup.get_or_create", 1, err, "table", table, "name", name)
	if err != nil {
		return 0, fmt.Errorf("get-or-create %s %q: %w", kind, name, err)
	}
	return id, nil
}
