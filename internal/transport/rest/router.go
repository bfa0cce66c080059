package rest

import (
	"net/http"

	"github.com/lunara-app/lunara-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Cycle    *CycleHandler
	Symptom  *SymptomHandler
	DailyLog *DailyLogHandler
	Content  *ContentHandler
	User     *UserHandler
	Health   *HealthHandler
}

// NewRouter mounts all REST routes. Authentication is applied as middleware
// around the returned handler; /admin routes are additionally gated by
// RequireAdmin, and the services check authorization for their own callers.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(fn)
	}

	// Auth.
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	// Health.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Public editorial content.
	mux.HandleFunc("GET /api/info/cards", h.Content.ListCards)
	mux.HandleFunc("GET /api/info/accordion", h.Content.ListSections)
	mux.HandleFunc("GET /api/info/tip", h.Content.Tip)

	// Cycles and calendar.
	mux.HandleFunc("POST /api/cycles", h.Cycle.Create)
	mux.HandleFunc("GET /api/cycles", h.Cycle.List)
	mux.HandleFunc("GET /api/cycles/statistics", h.Cycle.Statistics)
	mux.HandleFunc("GET /api/calendar", h.Cycle.Calendar)

	// Symptoms.
	mux.HandleFunc("GET /api/symptoms", h.Symptom.Catalog)
	mux.HandleFunc("POST /api/symptom-entries", h.Symptom.Log)
	mux.HandleFunc("GET /api/symptom-entries", h.Symptom.List)

	// Daily logs.
	mux.HandleFunc("POST /api/daily-logs", h.DailyLog.Upsert)
	mux.HandleFunc("GET /api/daily-logs", h.DailyLog.Get)

	// Profile.
	mux.HandleFunc("GET /api/me", h.User.Me)

	// Admin: user management.
	mux.Handle("GET /admin/users", admin(h.User.List))
	mux.Handle("POST /admin/users", admin(h.User.Create))
	mux.Handle("GET /admin/users/{id}", admin(h.User.Get))
	mux.Handle("PUT /admin/users/{id}", admin(h.User.SetRole))
	mux.Handle("DELETE /admin/users/{id}", admin(h.User.Delete))

	// Admin: editorial content.
	mux.Handle("GET /admin/info/cards", admin(h.Content.ListCards))
	mux.Handle("POST /admin/info/cards", admin(h.Content.CreateCard))
	mux.Handle("PUT /admin/info/cards/{id}", admin(h.Content.UpdateCard))
	mux.Handle("DELETE /admin/info/cards/{id}", admin(h.Content.DeleteCard))
	mux.Handle("GET /admin/info/accordion", admin(h.Content.ListSections))
	mux.Handle("POST /admin/info/accordion", admin(h.Content.CreateSection))
	mux.Handle("PUT /admin/info/accordion/{id}", admin(h.Content.UpdateSection))
	mux.Handle("DELETE /admin/info/accordion/{id}", admin(h.Content.DeleteSection))

	return mux
}
