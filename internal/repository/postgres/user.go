package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.username, u.password_hash, u.full_name, u.email, COALESCE(u.phone, ''), r.name, u.wallet_balance_cents, u.active, u.created_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleCustomer
	}
	query := `INSERT INTO users (username, password_hash, full_name, email, phone, role_id, wallet_balance_cents, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, (SELECT id FROM roles WHERE name = $6), $7, TRUE, $8) RETURNING id`
	now := time.Now()
	u.Active = true
	u.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.FullName, u.Email, u.Phone, u.Role, u.WalletBalanceCents, now).Scan(&u.ID)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
	          FROM users u JOIN roles r ON u.role_id = r.id
	          WHERE u.username = $1 AND u.active`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
	          FROM users u JOIN roles r ON u.role_id = r.id
	          WHERE u.id = $1 AND u.active`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.WalletBalanceCents, &u.Active, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + `
	          FROM users u JOIN roles r ON u.role_id = r.id
	          WHERE u.active ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn time.Time
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.WalletBalanceCents, &u.Active, &createdOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format("2006-01-02")
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Credit(ctx context.Context, id int32, cents int64) (int64, error) {
	var balance int64
	query := `UPDATE users SET wallet_balance_cents = wallet_balance_cents + $2
	          WHERE id = $1 AND active RETURNING wallet_balance_cents`
	err := r.db.QueryRowContext(ctx, query, id, cents).Scan(&balance)
	return balance, err
}

func (r *userRepository) Debit(ctx context.Context, id int32, cents int64) (int64, error) {
	var balance int64
	query := `UPDATE users SET wallet_balance_cents = wallet_balance_cents - $2
	          WHERE id = $1 AND active AND wallet_balance_cents >= $2
	          RETURNING wallet_balance_cents`
	err := r.db.QueryRowContext(ctx, query, id, cents).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, repository.ErrInsufficientFunds
	}
	return balance, err
}
