package router

import (
	"hostelvend-api/internal/handler"
	"hostelvend-api/internal/middleware"
	"hostelvend-api/internal/model"
	"hostelvend-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	VerifyHandler  *handler.VerifyHandler
	AdminHandler   *handler.AdminHandler
	Sessions       *service.SessionService
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireSession := middleware.RequireSession(middleware.AuthConfig{Sessions: cfg.Sessions})
	requireCustomer := middleware.RequireRole(model.RoleCustomer)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	// PUBLIC routes (no auth required)
	r.Get("/api/status", cfg.Handler.Status)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", cfg.Handler.Health)
		r.Get("/ready", cfg.Handler.Ready)

		// Account registry and sessions
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.With(requireSession).Get("/session", cfg.AuthHandler.Session)
		})

		// Browsing the grid needs no session; the kiosk front shows it
		// before login.
		r.Get("/catalog", cfg.CatalogHandler.List)
		r.Get("/catalog/{slot:[A-G][1-6]}", cfg.CatalogHandler.Get)

		// Verification gate
		r.Route("/verify", func(r chi.Router) {
			r.Post("/send", cfg.VerifyHandler.Send)
			r.Post("/check", cfg.VerifyHandler.Check)
		})

		// Customer routes
		r.Group(func(r chi.Router) {
			r.Use(requireSession)
			r.Use(requireCustomer)

			r.Post("/orders", cfg.OrderHandler.Place)
			r.Get("/orders", cfg.OrderHandler.ListMine)
		})

		// Admin routes
		r.Post("/admin/login", cfg.AuthHandler.AdminLogin)
		r.Group(func(r chi.Router) {
			r.Use(requireSession)
			r.Use(requireAdmin)

			r.Get("/admin/stats", cfg.AdminHandler.GetStats)

			r.Put("/catalog/{slot:[A-G][1-6]}", cfg.CatalogHandler.Update)
			r.Delete("/catalog/{slot:[A-G][1-6]}", cfg.CatalogHandler.Clear)
			r.Post("/catalog/reset", cfg.CatalogHandler.Reset)
			r.Get("/catalog/export", cfg.CatalogHandler.Export)
			r.Post("/catalog/import", cfg.CatalogHandler.Import)

			r.Get("/orders/all", cfg.OrderHandler.ListAll)
			r.Post("/orders/{id}/{event:pick|deliver|cancel}", cfg.OrderHandler.Transition)
		})
	})

	return r
}
