package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rengifo/usermanager/internal/jwt"
	"github.com/rengifo/usermanager/internal/observability/logger"
)

// WithRequestID asegura X-Request-ID e inyecta un logger scoped en el contexto.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)

		log := logger.L().With(logger.RequestID(rid), logger.Method(r.Method), logger.Path(r.URL.Path))
		next.ServeHTTP(w, r.WithContext(logger.ToContext(r.Context(), log)))
	})
}

// WithAccessLog loguea status y duración de cada request.
func WithAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := chi.RouteContext(r.Context()).RoutePattern()
		observeRequest(r.Method, route, status, time.Since(start))
		logger.From(r.Context()).Info("http request",
			logger.Status(status),
			logger.Duration(time.Since(start)),
		)
	})
}

// WithRecover captura panics y devuelve un 500.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.From(r.Context()).Error("panic recovered", logger.Op("recover"), logger.Any("panic", rec))
				WriteError(w, ErrInternal.WithDetail("panic recovered"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin exige "Authorization: Bearer <token>" válido para issuer.
// Con issuer nil el middleware es un passthrough (auth deshabilitada).
func RequireAdmin(issuer *jwt.AdminIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if issuer == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="usermanager"`)
				WriteError(w, ErrUnauthorized)
				return
			}
			if _, err := issuer.Parse(strings.TrimSpace(raw)); err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				WriteError(w, ErrUnauthorized.WithCause(err))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
