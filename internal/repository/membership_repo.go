package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MembershipRepository limpia membresias de comunidad al eliminar usuarios.
type MembershipRepository interface {
	DeleteByUserID(ctx context.Context, userID string) error
}

// PgMembershipRepository implementa MembershipRepository usando pgxpool.
type PgMembershipRepository struct {
	pool *pgxpool.Pool
}

func NewPgMembershipRepository(pool *pgxpool.Pool) *PgMembershipRepository {
	return &PgMembershipRepository{pool: pool}
}

func (r *PgMembershipRepository) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM community_memberships WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
