package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/jobdesk/jobdesk-api/internal/domain/auth"
	"github.com/jobdesk/jobdesk-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs         *service.JobService
	Auth         *service.AuthService
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
// Reads on the jobs resource are public; mutations require the admin role.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs}
	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
	}

	registerJobRoutes(mux, jobHandlers, services.Auth)
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers)
	}
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Logging(logger)(Recover(logger)(mux))
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, auth *service.AuthService) {
	// Nil-safe middleware factory so the router still works without auth
	// wired in (tests, local development without an identity provider).
	adminOnly := func(hh http.Handler) http.Handler {
		if auth != nil {
			return RequireRole(auth, domainauth.RoleAdmin)(hh)
		}
		return hh
	}

	mux.Handle("GET /jobs", http.HandlerFunc(h.List))
	mux.Handle("GET /jobs/{id}", http.HandlerFunc(h.GetByID))
	mux.Handle("POST /jobs", adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH /jobs/{id}", adminOnly(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /jobs/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}
