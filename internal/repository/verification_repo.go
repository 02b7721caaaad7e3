package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain"
)

// VerificationRepository define el contrato de persistencia para verificaciones.
type VerificationRepository interface {
	Create(ctx context.Context, verification domain.Verification) error
}

// PgVerificationRepository implementa VerificationRepository usando pgxpool.
type PgVerificationRepository struct {
	pool *pgxpool.Pool
}

func NewPgVerificationRepository(pool *pgxpool.Pool) *PgVerificationRepository {
	return &PgVerificationRepository{pool: pool}
}

func (r *PgVerificationRepository) Create(ctx context.Context, verification domain.Verification) error {
	const query = `
		INSERT INTO verifications (id, identifier, value, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		verification.ID,
		verification.Identifier,
		verification.Value,
		verification.ExpiresAt,
		verification.CreatedAt,
		verification.UpdatedAt,
	)
	return err
}
