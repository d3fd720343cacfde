package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sergiomezzz/mi-api-juegos2/internal/common"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/auth"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/config"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// dummyHash is a valid bcrypt hash compared against when login targets an
// unknown email, so that path costs the same as a real password check.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service implements registration and login over a user Repository.
type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the input, hashes the password, and creates the user.
// A username or email collision surfaces as common.ErrorAlreadyExists; the
// caller must not reveal which field collided.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {

	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token for the user. An unknown email and a wrong password produce the same
// error and comparable timing.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	email = NormalizeEmail(email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyHash)
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// NormalizeEmail lowercases and trims an email address, matching how
// addresses are stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
