package service

import (
	"context"
	"errors"
	"strconv"

	"Dashboard/internal/cache"
	dom "Dashboard/internal/domain"
	"Dashboard/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

const maxSessionList = 10

// UserService serves profile reads/updates and session listing.
type UserService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	cache    *cache.ProfileCache
	sf       singleflight.Group
}

// NewUserService creates a UserService. If c is nil, caching is disabled.
func NewUserService(users repo.UserRepo, sessions repo.SessionRepo, c *cache.ProfileCache) *UserService {
	return &UserService{users: users, sessions: sessions, cache: c}
}

// Profile returns the user by ID. Reads go through the cache when enabled;
// concurrent misses for the same user collapse into one DB query.
func (s *UserService) Profile(ctx context.Context, userID int64) (dom.User, error) {
	if s.cache != nil {
		key := "profile:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if u, err := s.cache.Get(ctx, userID); err == nil && u != nil {
				return *u, nil
			}
			u, err := s.users.GetByID(ctx, userID)
			if err != nil {
				return dom.User{}, err
			}
			u.PasswordHash = "" // the hash never enters the cache
			_ = s.cache.Set(ctx, u)
			return u, nil
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return dom.User{}, ErrNotFound
			}
			return dom.User{}, err
		}
		return v.(dom.User), nil
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// UpdateProfile applies a partial update; nil fields are left unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, fullName, avatarURL *string) (dom.User, error) {
	u, err := s.users.UpdateProfile(ctx, userID, fullName, avatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return u, nil
}

// Sessions returns the user's most recent login records, newest first,
// capped at 10.
func (s *UserService) Sessions(ctx context.Context, userID int64) ([]dom.Session, error) {
	return s.sessions.ListRecent(ctx, userID, maxSessionList)
}
