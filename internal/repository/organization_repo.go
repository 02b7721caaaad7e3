package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain"
)

// OrganizationRepository define el contrato de persistencia para organizaciones.
type OrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) error
	GetByID(ctx context.Context, id string) (domain.Organization, error)
	GetByName(ctx context.Context, name string) (domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

// PgOrganizationRepository implementa OrganizationRepository usando pgxpool.
type PgOrganizationRepository struct {
	pool *pgxpool.Pool
}

func NewPgOrganizationRepository(pool *pgxpool.Pool) *PgOrganizationRepository {
	return &PgOrganizationRepository{pool: pool}
}

func (r *PgOrganizationRepository) Create(ctx context.Context, org domain.Organization) error {
	const query = `
		INSERT INTO organizations (id, name, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.CreatedAt,
	)
	return err
}

func (r *PgOrganizationRepository) GetByID(ctx context.Context, id string) (domain.Organization, error) {
	const query = `
		SELECT id, name, created_at
		FROM organizations
		WHERE id = $1
	`
	var org domain.Organization
	err := r.pool.QueryRow(ctx, query, id).Scan(&org.ID, &org.Name, &org.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Organization{}, err
	}
	return org, err
}

func (r *PgOrganizationRepository) GetByName(ctx context.Context, name string) (domain.Organization, error) {
	const query = `
		SELECT id, name, created_at
		FROM organizations
		WHERE name = $1
	`
	var org domain.Organization
	err := r.pool.QueryRow(ctx, query, name).Scan(&org.ID, &org.Name, &org.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Organization{}, err
	}
	return org, err
}

func (r *PgOrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	const query = `
		SELECT id, name, created_at
		FROM organizations
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		if err = rows.Scan(&org.ID, &org.Name, &org.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}
