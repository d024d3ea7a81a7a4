package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mparraf99/inventory-api/internal/auth"
	"github.com/mparraf99/inventory-api/internal/http/handlers"
	"github.com/mparraf99/inventory-api/internal/http/ratelimit"
)

// Deps carries everything the router wires together. All collaborators are
// injected by the caller; the router holds no package-level state.
type Deps struct {
	Products *handlers.ProductHandler
	Batches  *handlers.BatchHandler
	Auth     *handlers.AuthHandler
	Tokens   *auth.TokenService
	Revoked  *auth.RevocationList

	// AuthLimiter throttles the credential endpoints; nil disables it.
	AuthLimiter *ratelimit.Limiter
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Route("/api/auth", func(r chi.Router) {
		if d.AuthLimiter != nil {
			r.Use(RateLimitMiddleware(d.AuthLimiter))
		}
		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(d.Tokens, d.Revoked))
			r.Post("/logout", d.Auth.Logout)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(d.Tokens, d.Revoked))

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", d.Products.List)
			r.Post("/", d.Products.Create)
			r.Get("/{id}", d.Products.GetByID)
			r.Put("/{id}", d.Products.Update)
			r.Delete("/{id}", d.Products.Delete)
		})

		r.Route("/api/products-batches", func(r chi.Router) {
			r.Get("/", d.Batches.GetAll)
			r.Post("/", d.Batches.Create)
			r.Get("/{id}", d.Batches.GetByID)
			r.Put("/{id}", d.Batches.Update)
			r.Delete("/{id}", d.Batches.Delete)
		})

		r.Get("/api/secure", handlers.SecureMessage)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
