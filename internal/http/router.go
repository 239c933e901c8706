// Package http expone el alta de usuarios por HTTP (chi).
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rengifo/usermanager/internal/jwt"
)

// RouterDeps contiene las dependencias del router.
type RouterDeps struct {
	Users   *UsersHandler
	Admin   *jwt.AdminIssuer // nil = sin auth
	Metrics http.Handler     // nil = sin /metrics
	Ready   func(ctx context.Context) error
}

// NewRouter arma las rutas:
//
//	GET  /readyz
//	GET  /metrics
//	POST /v1/users   (admin)
//	GET  /v1/users   (admin)
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(WithRequestID, WithRecover, WithAccessLog)

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if deps.Ready != nil {
			if err := deps.Ready(req.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/v1/users", func(r chi.Router) {
		r.Use(RequireAdmin(deps.Admin))
		r.Post("/", deps.Users.Create)
		r.Get("/", deps.Users.List)
	})

	return r
}
