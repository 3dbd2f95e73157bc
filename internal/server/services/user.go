// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

// AuthResult is what register and login hand back to the transport layer:
// the identity, its email for display, and a freshly minted token. The token
// claims themselves carry only the id.
type AuthResult struct {
	ID    string
	Email string
	Token string
}

// UserService provides the credential operations:
// - Register: create a user and mint a token
// - Login: verify credentials and mint a token
// - FindByEmail: look up a user for display
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// validateCredentials applies the baseline input checks: a syntactically
// valid email and a password between 6 and 72 bytes (the bcrypt input
// ceiling).
func validateCredentials(email, password string) error {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return fmt.Errorf("%w: email: %v", common.ErrorValidation, err)
	}
	if err := validation.Validate(password, validation.Required, validation.Length(6, 72)); err != nil {
		return fmt.Errorf("%w: password: %v", common.ErrorValidation, err)
	}
	return nil
}

// Register creates a new user with the given email and password and returns
// the new identity together with a token. An email already on file yields
// common.ErrorAlreadyExists; storage failures yield common.ErrorInternal.
//
// Hashing is deliberately slow, so Register can suspend the calling request
// for the duration of a bcrypt round plus a storage round trip.
func (s *UserService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		// The unique constraint backstops the lookup above when two
		// registrations race for the same email.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return s.authResult(user)
}

// Login verifies the presented password against the stored hash and, on
// success, returns the identity and a new token. Unknown email and wrong
// password both yield common.ErrorInvalidCredentials so that callers cannot
// probe for account existence.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.authResult(user)
}

// FindByEmail returns the stored user for the given email, or
// common.ErrorNotFound. Callers must not expose the password hash.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *UserService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{ID: user.ID, Email: user.Email, Token: token}, nil
}
