package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain"
)

// LoginEventRepository registra logins exitosos y agrega estadisticas diarias.
type LoginEventRepository interface {
	Create(ctx context.Context, event domain.LoginEvent) error
	UniqueLoginsPerDay(ctx context.Context, days int) ([]domain.LoginStat, error)
}

// PgLoginEventRepository implementa LoginEventRepository usando pgxpool.
type PgLoginEventRepository struct {
	pool *pgxpool.Pool
}

func NewPgLoginEventRepository(pool *pgxpool.Pool) *PgLoginEventRepository {
	return &PgLoginEventRepository{pool: pool}
}

func (r *PgLoginEventRepository) Create(ctx context.Context, event domain.LoginEvent) error {
	const query = `
		INSERT INTO login_events (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.CreatedAt,
	)
	return err
}

func (r *PgLoginEventRepository) UniqueLoginsPerDay(ctx context.Context, days int) ([]domain.LoginStat, error) {
	const query = `
		SELECT DATE(created_at) AS day, COUNT(DISTINCT user_id) AS unique_logins
		FROM login_events
		GROUP BY day
		ORDER BY day DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.LoginStat
	for rows.Next() {
		var day time.Time
		var count int
		if err = rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		stats = append(stats, domain.LoginStat{
			Date:         day.Format("2006-01-02"),
			UniqueLogins: count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
