package postgres

import (
	"database/sql"

	"rentwheels-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.LookupRepository
	repository.VehicleRepository
	repository.RentalRepository
	repository.WalletRepository
	repository.AuditRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB, ownerSharePercent int64) *Store {
	lookups := NewLookupRepository(db)
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		LookupRepository:  lookups,
		VehicleRepository: NewVehicleRepository(db, lookups),
		RentalRepository:  NewRentalRepository(db, ownerSharePercent),
		WalletRepository:  NewWalletRepository(db),
		AuditRepository:   NewAuditRepository(db),
		StatsRepository:   NewStatsRepository(db),
	}
}
