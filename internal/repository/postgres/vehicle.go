package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type vehicleRepository struct {
	db      *sql.DB
	lookups repository.LookupRepository
}

func NewVehicleRepository(db *sql.DB, lookups repository.LookupRepository) repository.VehicleRepository {
	return &vehicleRepository{db: db, lookups: lookups}
}

const vehicleColumns = `v.id, v.registration_no, vm.name, v.model, v.year, vc.name, v.daily_rate_cents, vs.name, v.owner_id, v.user_listed, COALESCE(v.location, '')`

const vehicleJoins = `FROM vehicles v
	          JOIN vehicle_makes vm ON v.make_id = vm.id
	          JOIN vehicle_colors vc ON v.color_id = vc.id
	          JOIN vehicle_statuses vs ON v.status_id = vs.id`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	makeID, err := r.lookups.GetOrCreate(ctx, repository.LookupMake, v.Make)
	if err != nil {
		return err
	}
	colorID, err := r.lookups.GetOrCreate(ctx, repository.LookupColor, v.Color)
	if err != nil {
		return err
	}

	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	query := `INSERT INTO vehicles (registration_no, make_id, model, year, color_id, daily_rate_cents, status_id, owner_id, user_listed, location, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, (SELECT id FROM vehicle_statuses WHERE name = $7), $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.RegistrationNo, makeID, v.Model, v.Year, colorID, v.DailyRateCents, v.Status, v.OwnerID, v.UserListed, v.Location, time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` ` + vehicleJoins + ` WHERE v.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.RegistrationNo, &v.Make, &v.Model, &v.Year, &v.Color, &v.DailyRateCents, &v.Status, &v.OwnerID, &v.UserListed, &v.Location)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` ` + vehicleJoins + `
	          WHERE vs.name = 'AVAILABLE' ORDER BY v.daily_rate_cents`
	return r.list(ctx, query)
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` ` + vehicleJoins + `
	          WHERE v.owner_id = $1 AND v.user_listed ORDER BY v.id`
	return r.list(ctx, query, ownerID)
}

func (r *vehicleRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.RegistrationNo, &v.Make, &v.Model, &v.Year, &v.Color, &v.DailyRateCents, &v.Status, &v.OwnerID, &v.UserListed, &v.Location); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status_id = (SELECT id FROM vehicle_statuses WHERE name = $1) WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *vehicleRepository) UpdateDailyRate(ctx context.Context, id int32, rateCents int64) error {
	query := `UPDATE vehicles SET daily_rate_cents = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, rateCents, id)
	return err
}
