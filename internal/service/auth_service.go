package service

import (
	"context"
	"errors"
	"log"
	"strings"

	dom "Dashboard/internal/domain"
	"Dashboard/internal/password"
	"Dashboard/internal/repo"
	"Dashboard/internal/token"
	"Dashboard/internal/utils"

	"github.com/jackc/pgx/v5"
)

const minPasswordLen = 8

var (
	ErrValidation         = errors.New("email, username and a password of at least 8 characters are required")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService orchestrates registration and login.
type AuthService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	hasher   *password.Hasher
	tokens   *token.Manager
}

// NewAuthService returns a new AuthService.
func NewAuthService(users repo.UserRepo, sessions repo.SessionRepo, hasher *password.Hasher, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, sessions: sessions, hasher: hasher, tokens: tokens}
}

// Register creates a user and issues a bearer token. It does not record a
// session; only login does. Email/username collisions yield ErrUserExists
// without revealing which field collided.
func (s *AuthService) Register(ctx context.Context, email, username, plainPassword string, fullName *string) (string, dom.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || len(plainPassword) < minPasswordLen {
		return "", dom.User{}, ErrValidation
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return "", dom.User{}, err
	}
	u, err := s.users.Create(ctx, email, username, hash, fullName)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return "", dom.User{}, ErrUserExists
		}
		return "", dom.User{}, err
	}
	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", dom.User{}, err
	}
	return tok, u, nil
}

// Login verifies credentials by email or username and issues a token.
// Unknown identifier and wrong password are indistinguishable to the caller.
// A session audit row is appended after the token is issued; recorder
// failure does not fail the login.
func (s *AuthService) Login(ctx context.Context, identifier, plainPassword string, ipAddress, userAgent *string) (string, dom.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plainPassword == "" {
		return "", dom.User{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", dom.User{}, ErrInvalidCredentials
		}
		return "", dom.User{}, err
	}
	if !s.hasher.Verify(plainPassword, u.PasswordHash) {
		return "", dom.User{}, ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", dom.User{}, err
	}
	if _, err := s.sessions.Create(ctx, u.ID, ipAddress, userAgent); err != nil {
		log.Printf("session record failed for user %d: %v", u.ID, err)
	}
	return tok, u, nil
}
