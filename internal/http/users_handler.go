package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/observability/logger"
	"github.com/rengifo/usermanager/internal/users"
)

// UserAdder es lo que el handler necesita del orquestador.
type UserAdder interface {
	AddUser(ctx context.Context, email, password string) (users.Outcome, error)
}

type addUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addUserResponse struct {
	Status string `json:"status"`
}

type recordDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UsersHandler expone el alta de usuarios.
type UsersHandler struct {
	users   UserAdder
	records func(ctx context.Context) ([]repository.Record, error)
}

func NewUsersHandler(u UserAdder, records func(ctx context.Context) ([]repository.Record, error)) *UsersHandler {
	return &UsersHandler{users: u, records: records}
}

// Create maneja POST /v1/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.From(r.Context()).With(logger.Layer("handler"), logger.Op("UsersHandler.Create"))

	var req addUserRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, ErrBadRequest.WithDetail(err.Error()))
		return
	}

	outcome, err := h.users.AddUser(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("add user failed", logger.Err(err))
		WriteError(w, ErrBackend.WithCause(err))
		return
	}
	if outcome == users.Rejected {
		WriteError(w, ErrUserRejected)
		return
	}
	writeJSON(w, http.StatusCreated, addUserResponse{Status: outcome.String()})
}

// List maneja GET /v1/users. Nunca expone hashes.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.records == nil {
		WriteError(w, ErrNotImplemented)
		return
	}
	recs, err := h.records(r.Context())
	if errors.Is(err, repository.ErrNotImplemented) {
		WriteError(w, ErrNotImplemented)
		return
	}
	if err != nil {
		WriteError(w, ErrBackend.WithCause(err))
		return
	}
	out := make([]recordDTO, len(recs))
	for i, rec := range recs {
		out[i] = recordDTO{ID: rec.ID, Email: rec.Email, CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00")}
	}
	writeJSON(w, http.StatusOK, out)
}
