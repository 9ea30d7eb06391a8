package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobdesk/jobdesk-api/internal/domain/auth"
	mockauth "github.com/jobdesk/jobdesk-api/internal/mocks/auth"
	"github.com/jobdesk/jobdesk-api/internal/ports"
)

func newAuthService(provider *mockauth.MockAuthProvider, store *mockauth.MemorySessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: store,
		Roles:    mockauth.StaticRoleMapper{AdminGroup: "admins", UserGroup: "users"},
	})
}

func TestAuthService_BeginLogin(t *testing.T) {
	t.Parallel()
	svc := newAuthService(mockauth.NewMockAuthProvider(), mockauth.NewMemorySessionStore())

	result, err := svc.BeginLogin(context.Background(), "/jobs")

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Nonce)
}

func TestAuthService_BeginLogin_MissingRedirect(t *testing.T) {
	t.Parallel()
	svc := newAuthService(mockauth.NewMockAuthProvider(), mockauth.NewMemorySessionStore())

	result, err := svc.BeginLogin(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestAuthService_CompleteLogin_MapsRoleAndSavesSession(t *testing.T) {
	t.Parallel()

	provider := mockauth.NewMockAuthProvider()
	provider.DefaultUser = domainauth.Identity{
		UserID: "admin-1",
		Name:   "Admin User",
		Email:  "admin@example.com",
		Groups: []string{"admins"},
	}
	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(provider, store)

	session, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code-1",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "admin-1", session.UserID)
	assert.Equal(t, domainauth.RoleAdmin, session.Role)

	// session must be retrievable from the store
	stored, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, *session, stored)
}

func TestAuthService_CompleteLogin_MissingParams(t *testing.T) {
	t.Parallel()
	svc := newAuthService(mockauth.NewMockAuthProvider(), mockauth.NewMemorySessionStore())

	tests := []struct {
		name  string
		input CompleteLoginInput
	}{
		{name: "missing code", input: CompleteLoginInput{State: "s", Nonce: "n"}},
		{name: "missing state", input: CompleteLoginInput{Code: "c", Nonce: "n"}},
		{name: "missing nonce", input: CompleteLoginInput{Code: "c", State: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			session, err := svc.CompleteLogin(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestAuthService_CompleteLogin_ExchangeFailure(t *testing.T) {
	t.Parallel()

	provider := mockauth.NewMockAuthProvider()
	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("invalid code")
	}
	svc := newAuthService(provider, mockauth.NewMemorySessionStore())

	session, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "bad",
		State: "s",
		Nonce: "n",
	})

	require.Error(t, err)
	assert.Nil(t, session)
}

func TestAuthService_GetSession(t *testing.T) {
	t.Parallel()

	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(mockauth.NewMockAuthProvider(), store)

	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(context.Background(), sess))

	got, err := svc.GetSession(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, sess, *got)
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	t.Parallel()

	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(mockauth.NewMockAuthProvider(), store)

	sess := domainauth.Session{
		ID:        "sess-old",
		UserID:    "user-1",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.Save(context.Background(), sess))

	got, err := svc.GetSession(context.Background(), "sess-old")

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, got)

	// expired session is removed from the store
	_, err = store.Get(context.Background(), "sess-old")
	require.ErrorIs(t, err, mockauth.ErrNotFound)
}

func TestAuthService_GetSession_EmptyID(t *testing.T) {
	t.Parallel()
	svc := newAuthService(mockauth.NewMockAuthProvider(), mockauth.NewMemorySessionStore())

	got, err := svc.GetSession(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()

	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(mockauth.NewMockAuthProvider(), store)

	sess := domainauth.Session{ID: "sess-1", UserID: "u", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(context.Background(), sess))

	require.NoError(t, svc.Logout(context.Background(), "sess-1"))

	_, err := store.Get(context.Background(), "sess-1")
	require.ErrorIs(t, err, mockauth.ErrNotFound)
}

func TestAuthService_Logout_EmptyIDIsNoop(t *testing.T) {
	t.Parallel()
	svc := newAuthService(mockauth.NewMockAuthProvider(), mockauth.NewMemorySessionStore())

	require.NoError(t, svc.Logout(context.Background(), ""))
}
