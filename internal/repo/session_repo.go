package repo

import (
	"context"

	dom "Dashboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepo provides login-audit persistence.
type SessionRepo interface {
	Create(ctx context.Context, userID int64, ipAddress, userAgent *string) (dom.Session, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]dom.Session, error)
}

// PGSessionRepo implements SessionRepo with Postgres.
type PGSessionRepo struct {
	db *pgxpool.Pool
}

// NewPGSessionRepo returns a new PGSessionRepo.
func NewPGSessionRepo(db *pgxpool.Pool) *PGSessionRepo {
	return &PGSessionRepo{db: db}
}

// Create appends a login audit row.
func (r *PGSessionRepo) Create(ctx context.Context, userID int64, ipAddress, userAgent *string) (dom.Session, error) {
	query := `
		INSERT INTO sessions (user_id, ip_address, user_agent)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, ip_address, user_agent, created_at`
	var s dom.Session
	err := r.db.QueryRow(ctx, query, userID, ipAddress, userAgent).Scan(
		&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.CreatedAt,
	)
	return s, err
}

// ListRecent returns up to limit sessions for userID, newest first.
func (r *PGSessionRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]dom.Session, error) {
	query := `
		SELECT id, user_id, ip_address, user_agent, created_at
		FROM sessions WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Session
	for rows.Next() {
		var s dom.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
