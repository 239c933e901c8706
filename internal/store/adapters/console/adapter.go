// Package console implementa el "almacenamiento" por consola: imprime el
// registro en vez de persistirlo.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/store"
)

func init() {
	store.RegisterAdapter(&consoleAdapter{})
}

type consoleAdapter struct{}

func (a *consoleAdapter) Name() string { return "console" }

func (a *consoleAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.Connection, error) {
	return &consoleConnection{repo: NewUserRepository(cfg.Output())}, nil
}

type consoleConnection struct {
	repo *UserRepository
}

func (c *consoleConnection) Name() string                     { return "console" }
func (c *consoleConnection) Ping(ctx context.Context) error   { return nil }
func (c *consoleConnection) Close() error                     { return nil }
func (c *consoleConnection) Users() repository.UserRepository { return c.repo }

// UserRepository escribe el candidato en texto plano: banner, email, password.
type UserRepository struct {
	out io.Writer
}

// NewUserRepository crea un repositorio de consola sobre w.
func NewUserRepository(w io.Writer) *UserRepository {
	return &UserRepository{out: w}
}

// SaveToDatabase nunca falla; los errores de escritura se ignoran como en un print.
func (r *UserRepository) SaveToDatabase(ctx context.Context, email, password string) error {
	fmt.Fprintln(r.out, "Saving user to the database...")
	fmt.Fprintln(r.out, "Email: "+email)
	fmt.Fprintln(r.out, "Password: "+password)
	return nil
}
