package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/auth"
)

// bcrypt cost 12 balances login latency against brute-force cost. Tests
// inject the bcrypt minimum via NewAuthServiceWithCost.
const defaultBcryptCost = 12

type authService struct {
	repo       auth.Repository
	sessions   auth.SessionStore
	bcryptCost int
}

func NewAuthService(repo auth.Repository, sessions auth.SessionStore) auth.Service {
	return &authService{
		repo:       repo,
		sessions:   sessions,
		bcryptCost: defaultBcryptCost,
	}
}

// NewAuthServiceWithCost is for tests; a low cost keeps bcrypt fast.
func NewAuthServiceWithCost(repo auth.Repository, sessions auth.SessionStore, cost int) auth.Service {
	return &authService{
		repo:       repo,
		sessions:   sessions,
		bcryptCost: cost,
	}
}

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AdminAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, auth.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &auth.AdminAccount{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AdminAccount, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			// Same error as a wrong password so callers cannot probe
			// which emails have accounts.
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return account, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*auth.AdminAccount, error) {
	accountID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return nil, auth.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			// Session outlived its account.
			return nil, auth.ErrUnauthorized
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return account, nil
}
