package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/auth"
)

type fakeRepo struct {
	accounts map[string]*auth.AdminAccount // by email
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[string]*auth.AdminAccount)}
}

func (f *fakeRepo) Create(_ context.Context, account *auth.AdminAccount) error {
	if _, ok := f.accounts[account.Email]; ok {
		return auth.ErrEmailAlreadyExists
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*auth.AdminAccount, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*auth.AdminAccount, error) {
	a, ok := f.accounts[email]
	if !ok {
		return nil, auth.ErrAccountNotFound
	}
	return a, nil
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.accounts[email]
	return ok, nil
}

type fakeSessionStore struct {
	sessions map[string]uuid.UUID
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]uuid.UUID)}
}

func (f *fakeSessionStore) Create(_ context.Context, accountID uuid.UUID) (string, error) {
	token := uuid.New().String()
	f.sessions[token] = accountID
	return token, nil
}

func (f *fakeSessionStore) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	id, ok := f.sessions[token]
	if !ok {
		return uuid.Nil, auth.ErrSessionNotFound
	}
	return id, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func newTestService(repo auth.Repository, sessions auth.SessionStore) auth.Service {
	return NewAuthServiceWithCost(repo, sessions, bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeSessionStore())

	account, err := svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", account.Email)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.NotEqual(t, "secretpass", account.PasswordHash)

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secretpass"))
	assert.NoError(t, err, "stored hash should verify against the password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo(), newFakeSessionStore())

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "otherpass1"})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo(), newFakeSessionStore())

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "not-an-email", Password: "secretpass"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(repo, sessions)

	registered, err := svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)

	account, token, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, account.ID)
	assert.NotEmpty(t, token)

	current, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, current.ID)
}

func TestLoginFailureDoesNotRevealAccountExistence(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo(), newFakeSessionStore())

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "wrongpass1"})
	_, _, unknownEmail := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "secretpass"})

	assert.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail, "both failures must be indistinguishable")
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionStore()
	svc := newTestService(newFakeRepo(), sessions)

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	require.NoError(t, svc.Logout(ctx, token), "second logout must not fail")

	_, err = svc.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestCurrentUserUnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo(), newFakeSessionStore())

	_, err := svc.CurrentUser(ctx, "deadbeef")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestCurrentUserSessionOutlivesAccount(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(repo, sessions)

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "secretpass"})
	require.NoError(t, err)

	delete(repo.accounts, "admin@example.com")

	_, err = svc.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}
