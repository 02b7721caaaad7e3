package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain"
)

// AccountRepository define el contrato de persistencia para cuentas de autenticacion.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	GetByUserAndProvider(ctx context.Context, userID, providerID string) (domain.Account, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// PgAccountRepository implementa AccountRepository usando pgxpool.
type PgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

func (r *PgAccountRepository) Create(ctx context.Context, account domain.Account) error {
	const query = `
		INSERT INTO accounts (id, user_id, provider_id, account_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.ProviderID,
		account.AccountID,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)
	return err
}

func (r *PgAccountRepository) GetByUserAndProvider(ctx context.Context, userID, providerID string) (domain.Account, error) {
	const query = `
		SELECT id, user_id, provider_id, account_id, COALESCE(password_hash, ''), created_at, updated_at
		FROM accounts
		WHERE user_id = $1 AND provider_id = $2
	`
	var a domain.Account
	err := r.pool.QueryRow(ctx, query, userID, providerID).Scan(
		&a.ID,
		&a.UserID,
		&a.ProviderID,
		&a.AccountID,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Account{}, err
	}
	return a, err
}

func (r *PgAccountRepository) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM accounts WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
