// Package users coordina el alta de usuarios: valida, persiste y notifica
// usando colaboradores inyectados por constructor.
package users

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rengifo/usermanager/internal/audit"
	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/email"
	"github.com/rengifo/usermanager/internal/metrics"
	"github.com/rengifo/usermanager/internal/observability/logger"
	"github.com/rengifo/usermanager/internal/store/adapters/console"
	"github.com/rengifo/usermanager/internal/validation"
)

const (
	msgAdded    = "User successfully added and notified."
	msgRejected = "Invalid email or password. User not added."
)

// Validator es el gate de validación. Un candidato inválido no es un error.
type Validator interface {
	ValidateUser(email, password string) bool
}

// Outcome es el resultado de AddUser.
type Outcome int

const (
	// Rejected: el candidato no pasó la validación. No es un error.
	Rejected Outcome = iota
	// Added: guardado y notificado.
	Added
	// Failed: un backend falló; siempre viene acompañado de error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Failed:
		return "failed"
	default:
		return "rejected"
	}
}

// UserManager orquesta Validator → UserRepository → NotificationService.
type UserManager struct {
	validator Validator
	repo      repository.UserRepository
	notifier  email.NotificationService
	out       io.Writer
}

// Option configura un UserManager.
type Option func(*UserManager)

// WithOutput cambia el destino de los mensajes de estado (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(m *UserManager) { m.out = w }
}

// New crea un UserManager con los colaboradores dados.
func New(v Validator, r repository.UserRepository, n email.NotificationService, opts ...Option) *UserManager {
	m := &UserManager{validator: v, repo: r, notifier: n, out: os.Stdout}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewDefault arma el UserManager de consola: validador por defecto,
// repositorio y notificador que escriben en w.
func NewDefault(w io.Writer) *UserManager {
	return New(
		&validation.UserValidator{},
		console.NewUserRepository(w),
		email.NewConsoleNotifier(w),
		WithOutput(w),
	)
}

// AddUser valida el candidato y, si pasa, lo guarda y notifica en ese orden.
// El rechazo se informa como Rejected con error nil; solo los backends
// reales pueden devolver error (con Failed), y en ese caso no se imprime
// mensaje de estado.
func (m *UserManager) AddUser(ctx context.Context, email, password string) (Outcome, error) {
	log := logger.From(ctx).With(logger.Op("UserManager.AddUser"), logger.Email(email))

	if !m.validator.ValidateUser(email, password) {
		fmt.Fprintln(m.out, msgRejected)
		metrics.UsersRejected.Inc()
		audit.Log(ctx, audit.EventUserRejected, logger.Email(email), logger.Outcome(Rejected.String()))
		return Rejected, nil
	}

	if err := m.repo.SaveToDatabase(ctx, email, password); err != nil {
		metrics.UserErrors.WithLabelValues("save").Inc()
		log.Error("save failed", logger.Err(err))
		audit.Log(ctx, audit.EventUserFailed, logger.Email(email), logger.String("stage", "save"))
		return Failed, fmt.Errorf("users: save %s: %w", email, err)
	}
	if err := m.notifier.SendWelcomeEmail(ctx, email); err != nil {
		metrics.UserErrors.WithLabelValues("notify").Inc()
		log.Error("notify failed", logger.Err(err))
		audit.Log(ctx, audit.EventUserFailed, logger.Email(email), logger.String("stage", "notify"))
		return Failed, fmt.Errorf("users: notify %s: %w", email, err)
	}

	fmt.Fprintln(m.out, msgAdded)
	metrics.UsersAdded.Inc()
	audit.Log(ctx, audit.EventUserAdded, logger.Email(email), logger.Outcome(Added.String()))
	return Added, nil
}
