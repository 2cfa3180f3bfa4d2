package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type rentalRepository struct {
	db                *sql.DB
	ownerSharePercent int64
}

func NewRentalRepository(db *sql.DB, ownerSharePercent int64) repository.RentalRepository {
	return &rentalRepository{db: db, ownerSharePercent: ownerSharePercent}
}

const rentalColumns = `id, user_id, vehicle_id, rental_date, return_date, total_cents, status, payment_status, payment_ref, approved_by, created_on`

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.UserID, &rt.VehicleID, &rt.RentalDate, &rt.ReturnDate, &rt.TotalCents, &rt.Status, &rt.PaymentStatus, &rt.PaymentRef, &rt.ApprovedBy, &rt.CreatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 ORDER BY id DESC`
	return r.list(ctx, query, userID)
}

func (r *rentalRepository) ListPending(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'PENDING' ORDER BY created_on`
	return r.list(ctx, query)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	return scanRentals(r.db.QueryContext(ctx, query, args...))
}

// CreateRental is the single transaction behind rental submission: it locks
// the vehicle row, verifies availability, recomputes the cost from the stored
// daily rate, debits the renter's wallet and inserts the PENDING rental with
// its debit transaction. Any failure rolls the whole thing back, so the
// wallet only ever reflects a rental that exists.
func (r *rentalRepository) CreateRental(ctx context.Context, userID, vehicleID int32, rentalDate, returnDate time.Time) (*domain.Rental, error) {
	days := int64(returnDate.Sub(rentalDate).Hours() / 24)
	if days <= 0 {
		return nil, repository.ErrInvalidPeriod
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var rateCents int64
	var status string
	lockQuery := `SELECT v.daily_rate_cents, vs.name FROM vehicles v
	          JOIN vehicle_statuses vs ON v.status_id = vs.id
	          WHERE v.id = $1 FOR UPDATE OF v`
	if err := tx.QueryRowContext(ctx, lockQuery, vehicleID).Scan(&rateCents, &status); err != nil {
		return nil, fmt.Errorf("lock vehicle %d: %w", vehicleID, err)
	}
	if status != string(domain.VehicleStatusAvailable) {
		return nil, repository.ErrVehicleNotAvailable
	}

	totalCents := days * rateCents

	debitQuery := `UPDATE users SET wallet_balance_cents = wallet_balance_cents - $2
	          WHERE id = $1 AND active AND wallet_balance_cents >= $2
	          RETURNING wallet_balance_cents`
	var balance int64
	if err := tx.QueryRowContext(ctx, debitQuery, userID, totalCents).Scan(&balance); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrInsufficientFunds
		}
		return nil, err
	}

	rt := &domain.Rental{
		UserID:        userID,
		VehicleID:     vehicleID,
		RentalDate:    rentalDate,
		ReturnDate:    returnDate,
		TotalCents:    totalCents,
		Status:        domain.RentalStatusPending,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentRef:    uuid.NewString(),
		CreatedOn:     time.Now(),
	}
	insertQuery := `INSERT INTO rentals (user_id, vehicle_id, rental_date, return_date, total_cents, status, payment_status, payment_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := tx.QueryRowContext(ctx, insertQuery, rt.UserID, rt.VehicleID, rt.RentalDate, rt.ReturnDate, rt.TotalCents, rt.Status, rt.PaymentStatus, rt.PaymentRef, rt.CreatedOn).Scan(&rt.ID); err != nil {
		return nil, err
	}

	txQuery := `INSERT INTO wallet_transactions (user_id, amount_cents, type, related_rental_id, reference, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	desc := fmt.Sprintf("Rental payment for vehicle %d", vehicleID)
	if _, err := tx.ExecContext(ctx, txQuery, userID, -totalCents, domain.TransactionTypeRentalDebit, rt.ID, rt.PaymentRef, desc, rt.CreatedOn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rt, nil
}

// ApproveRental moves a PENDING rental to APPROVED in one transaction: the
// vehicle goes to RENTED and the fare is split between the listing owner's
// wallet and the company commission.
func (r *rentalRepository) ApproveRental(ctx context.Context, rentalID, approverID int32) (*domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rt := &domain.Rental{}
	lockQuery := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, rentalID).Scan(&rt.ID, &rt.UserID, &rt.VehicleID, &rt.RentalDate, &rt.ReturnDate, &rt.TotalCents, &rt.Status, &rt.PaymentStatus, &rt.PaymentRef, &rt.ApprovedBy, &rt.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("lock rental %d: %w", rentalID, err)
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, repository.ErrRentalNotPending
	}

	updateQuery := `UPDATE rentals SET status = $1, approved_by = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, updateQuery, domain.RentalStatusApproved, approverID, rentalID); err != nil {
		return nil, err
	}

	vehicleQuery := `UPDATE vehicles SET status_id = (SELECT id FROM vehicle_statuses WHERE name = $1)
	          WHERE id = $2 RETURNING owner_id, user_listed`
	var ownerID int32
	var userListed bool
	if err := tx.QueryRowContext(ctx, vehicleQuery, domain.VehicleStatusRented, rt.VehicleID).Scan(&ownerID, &userListed); err != nil {
		return nil, err
	}

	ownerShare := int64(0)
	if userListed && ownerID != domain.CompanyOwnerID {
		ownerShare = rt.TotalCents * r.ownerSharePercent / 100
	}
	commission := rt.TotalCents - ownerShare

	now := time.Now()
	txQuery := `INSERT INTO wallet_transactions (user_id, amount_cents, type, related_rental_id, reference, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if ownerShare > 0 {
		creditQuery := `UPDATE users SET wallet_balance_cents = wallet_balance_cents + $2 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, creditQuery, ownerID, ownerShare); err != nil {
			return nil, err
		}
		desc := fmt.Sprintf("Earnings from rental %d", rentalID)
		if _, err := tx.ExecContext(ctx, txQuery, ownerID, ownerShare, domain.TransactionTypeOwnerCredit, rentalID, uuid.NewString(), desc, now); err != nil {
			return nil, err
		}
	}

	// Commission posts to the company account; approved_by on the rental
	// records which admin signed off.
	desc := fmt.Sprintf("Commission on rental %d", rentalID)
	if _, err := tx.ExecContext(ctx, txQuery, domain.CompanyOwnerID, commission, domain.TransactionTypeAdminCommission, rentalID, uuid.NewString(), desc, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	rt.Status = domain.RentalStatusApproved
	rt.ApprovedBy = &approverID
	return rt, nil
}

// MarkOverdue releases vehicles whose approved rental period has ended. The
// rental stays on the books as OVERDUE until staff settles it manually.
func (r *rentalRepository) MarkOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	updateQuery := `UPDATE rentals SET status = $1
	          WHERE status = $2 AND return_date < $3
	          RETURNING ` + rentalColumns
	rentals, err := scanRentals(tx.QueryContext(ctx, updateQuery, domain.RentalStatusOverdue, domain.RentalStatusApproved, now))
	if err != nil {
		return nil, err
	}

	releaseQuery := `UPDATE vehicles SET status_id = (SELECT id FROM vehicle_statuses WHERE name = $1) WHERE id = $2`
	for _, rt := range rentals {
		if _, err := tx.ExecContext(ctx, releaseQuery, domain.VehicleStatusAvailable, rt.VehicleID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rentals, nil
}

// ExpireStalePending cancels rentals that sat unapproved past the cutoff and
// pays the money back, mirroring the debit taken at creation.
func (r *rentalRepository) ExpireStalePending(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	updateQuery := `UPDATE rentals SET status = $1, payment_status = $2
	          WHERE status = $3 AND created_on < $4
	          RETURNING ` + rentalColumns
	rentals, err := scanRentals(tx.QueryContext(ctx, updateQuery, domain.RentalStatusCancelled, domain.PaymentStatusRefunded, domain.RentalStatusPending, cutoff))
	if err != nil {
		return nil, err
	}

	refundQuery := `UPDATE users SET wallet_balance_cents = wallet_balance_cents + $2 WHERE id = $1`
	txQuery := `INSERT INTO wallet_transactions (user_id, amount_cents, type, related_rental_id, reference, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now()
	for _, rt := range rentals {
		if _, err := tx.ExecContext(ctx, refundQuery, rt.UserID, rt.TotalCents); err != nil {
			return nil, err
		}
		desc := fmt.Sprintf("Refund for expired rental %d", rt.ID)
		if _, err := tx.ExecContext(ctx, txQuery, rt.UserID, rt.TotalCents, domain.TransactionTypeRentalRefund, rt.ID, uuid.NewString(), desc, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rentals, nil
}

func scanRentals(rows *sql.Rows, err error) ([]domain.Rental, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.VehicleID, &rt.RentalDate, &rt.ReturnDate, &rt.TotalCents, &rt.Status, &rt.PaymentStatus, &rt.PaymentRef, &rt.ApprovedBy, &rt.CreatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
