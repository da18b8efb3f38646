package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/cryptox"
	"github.com/Leonelvm1/FinanceApp/pkg/idx"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

// AuthService covers signup, credential verification, and per-request
// identity resolution.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Signup is the field-by-field mapping from an untrusted signup request to
// a persisted account. The password is hashed immediately and the
// plaintext is not retained or logged.
type Signup struct {
	FullName    string
	BirthDate   time.Time
	Location    string
	SavingsGoal int64 // cents
	Password    string
}

// Register creates a new account. A duplicate handle reports
// store.ErrAlreadyExists unchanged so the adapter can answer 409.
func (s *AuthService) Register(ctx context.Context, in Signup) (domain.User, error) {
	handle := strings.TrimSpace(in.FullName)
	location := strings.TrimSpace(in.Location)

	switch {
	case handle == "":
		return domain.User{}, fmt.Errorf("%w: full name is required", ErrValidation)
	case location == "":
		return domain.User{}, fmt.Errorf("%w: location is required", ErrValidation)
	case in.BirthDate.IsZero():
		return domain.User{}, fmt.Errorf("%w: birth date is required", ErrValidation)
	case in.SavingsGoal < 0:
		return domain.User{}, fmt.Errorf("%w: savings goal cannot be negative", ErrValidation)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: unusable password", ErrValidation)
	}

	u := domain.User{
		ID:           idx.New().String(),
		FullName:     handle,
		BirthDate:    in.BirthDate,
		Location:     location,
		SavingsGoal:  in.SavingsGoal,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}

	return u, nil
}

// Login verifies the handle/password pair and issues an access token.
// Unknown handle and wrong password both come back as
// ErrInvalidCredentials; nothing distinguishes them externally.
func (s *AuthService) Login(ctx context.Context, handle, password string, now time.Time) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed: unknown handle")
			return domain.AccessToken{}, ErrInvalidCredentials
		}
		return domain.AccessToken{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login failed: password mismatch", "user_id", u.ID)
		return domain.AccessToken{}, ErrInvalidCredentials
	}

	return s.Tokens.Issue(u.FullName, now)
}

// Resolve turns a presented bearer token into the current account, or a
// rejection. The subject is looked up in storage on every call so a token
// minted for a since-deleted account never resolves.
func (s *AuthService) Resolve(ctx context.Context, bearer string, now time.Time) (domain.User, error) {
	if strings.TrimSpace(bearer) == "" {
		return domain.User{}, ErrMissingCredentials
	}

	handle, err := s.Tokens.Validate(bearer, now)
	if err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().GetUserByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownSubject
		}
		return domain.User{}, err
	}

	return u, nil
}
