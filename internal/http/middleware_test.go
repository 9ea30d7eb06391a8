package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobdesk/jobdesk-api/internal/domain/auth"
	"github.com/jobdesk/jobdesk-api/internal/service"
)

// stubAuthService implements AuthServiceInterface for middleware tests.
type stubAuthService struct {
	session *domainauth.Session
	err     error
}

func (s *stubAuthService) BeginLogin(context.Context, string) (*service.BeginLoginResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) CompleteLogin(context.Context, service.CompleteLoginInput) (*domainauth.Session, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.session == nil || s.session.ID != sessionID {
		return nil, errors.New("session not found")
	}
	return s.session, nil
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func adminSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-admin",
		UserID:    "user-1",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func userSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-user",
		UserID:    "user-2",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRole_NoCookie(t *testing.T) {
	t.Parallel()

	var called bool
	handler := RequireRole(&stubAuthService{}, domainauth.RoleAdmin)(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_InvalidSession(t *testing.T) {
	t.Parallel()

	var called bool
	svc := &stubAuthService{err: errors.New("expired")}
	handler := RequireRole(svc, domainauth.RoleAdmin)(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-admin"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	t.Parallel()

	var called bool
	svc := &stubAuthService{session: userSession()}
	handler := RequireRole(svc, domainauth.RoleAdmin)(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-user"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	t.Parallel()

	var called bool
	svc := &stubAuthService{session: adminSession()}
	handler := RequireRole(svc, domainauth.RoleAdmin)(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-admin"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireRole_AdminSatisfiesUserRole(t *testing.T) {
	t.Parallel()

	var called bool
	svc := &stubAuthService{session: adminSession()}
	handler := RequireRole(svc, domainauth.RoleUser)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-admin"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireAuth_SessionInContext(t *testing.T) {
	t.Parallel()

	sess := userSession()
	svc := &stubAuthService{session: sess}

	var got *domainauth.Session
	handler := RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-user"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-2", got.UserID)
}

func TestOptionalAuth_ContinuesWithoutSession(t *testing.T) {
	t.Parallel()

	var got *domainauth.Session
	handler := OptionalAuth(&stubAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)
}

func TestRecover_PanicReturnsInternalError(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error":{"message":"Internal server error","status":500}}`,
		rec.Body.String())
}

func TestLogging_PreservesStatus(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
