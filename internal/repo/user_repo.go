package repo

import (
	"context"

	dom "Dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, email, username, passwordHash string, fullName *string) (dom.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	UpdateProfile(ctx context.Context, id int64, fullName, avatarURL *string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, email, username, password_hash, full_name, avatar_url, created_at, updated_at`

func scanUser(row pgx.Row) (dom.User, error) {
	var u dom.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.FullName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a new user and returns it. Email and username collisions
// surface as a unique-violation error from the database; exactly one of any
// set of concurrent conflicting inserts succeeds.
func (r *PGUserRepo) Create(ctx context.Context, email, username, passwordHash string, fullName *string) (dom.User, error) {
	query := `
		INSERT INTO users (email, username, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, email, username, passwordHash, fullName))
}

// GetByIdentifier returns the user whose email or username equals identifier.
func (r *PGUserRepo) GetByIdentifier(ctx context.Context, identifier string) (dom.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR username = $1`
	return scanUser(r.db.QueryRow(ctx, query, identifier))
}

// GetByID returns the user by primary key.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdateProfile applies a partial update: nil fields keep the stored value
// (COALESCE merge-on-null). updated_at is always refreshed.
func (r *PGUserRepo) UpdateProfile(ctx context.Context, id int64, fullName, avatarURL *string) (dom.User, error) {
	query := `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
		    avatar_url = COALESCE($3, avatar_url),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, id, fullName, avatarURL))
}
