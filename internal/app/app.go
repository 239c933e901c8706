// Package app arma el Container de la aplicación a partir de la configuración.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rengifo/usermanager/internal/config"
	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/email"
	"github.com/rengifo/usermanager/internal/observability/logger"
	"github.com/rengifo/usermanager/internal/store"
	"github.com/rengifo/usermanager/internal/users"
	"github.com/rengifo/usermanager/internal/validation"

	// Adapters registrados en init().
	_ "github.com/rengifo/usermanager/internal/store/adapters/console"
	_ "github.com/rengifo/usermanager/internal/store/adapters/memory"
	_ "github.com/rengifo/usermanager/internal/store/adapters/pg"
	_ "github.com/rengifo/usermanager/internal/store/adapters/redis"
)

type Container struct {
	Config   *config.Config
	Conn     store.Connection
	Notifier email.NotificationService
	Users    *users.UserManager
}

// Options ajusta el armado; Out es el destino de la salida de consola.
type Options struct {
	Out io.Writer
}

// New conecta el almacenamiento y arma el UserManager.
// El caller debe llamar Close.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := logger.Named("app")

	acfg := store.AdapterConfig{Name: cfg.Storage.Driver, DSN: cfg.Storage.DSN, Out: out}
	if ttl, err := time.ParseDuration(cfg.Storage.Memory.DefaultTTL); err == nil {
		acfg.DefaultTTL = ttl
	}
	acfg.Redis.Addr = cfg.Storage.Redis.Addr
	acfg.Redis.Password = cfg.Storage.Redis.Password
	acfg.Redis.DB = cfg.Storage.Redis.DB
	acfg.Redis.Prefix = cfg.Storage.Redis.Prefix

	conn, err := store.Open(ctx, acfg)
	if err != nil {
		return nil, err
	}

	notifier, err := newNotifier(cfg, out)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debug("container ready",
		logger.String("storage", cfg.Storage.Driver),
		logger.String("notify", cfg.Notify.Driver),
	)

	return &Container{
		Config:   cfg,
		Conn:     conn,
		Notifier: notifier,
		Users: users.New(
			validation.NewUserValidator(cfg.Validation.MinPasswordLength),
			conn.Users(),
			notifier,
			users.WithOutput(out),
		),
	}, nil
}

func newNotifier(cfg *config.Config, out io.Writer) (email.NotificationService, error) {
	switch cfg.Notify.Driver {
	case config.DriverSMTP:
		s := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
		s.TLSMode = cfg.SMTP.TLS
		s.InsecureSkipVerify = cfg.SMTP.InsecureSkipVerify
		return email.NewWelcomeNotifier(s, email.WelcomeConfig{AppName: cfg.App.Name, Subject: cfg.Notify.Subject})
	case config.DriverConsole, "":
		return email.NewConsoleNotifier(out), nil
	default:
		return nil, fmt.Errorf("%w: unknown notify driver %q", config.ErrInvalid, cfg.Notify.Driver)
	}
}

// Records lista lo guardado si el backend lo soporta.
func (c *Container) Records(ctx context.Context) ([]repository.Record, error) {
	l, ok := c.Conn.Users().(repository.RecordLister)
	if !ok {
		return nil, fmt.Errorf("%s: %w", c.Conn.Name(), repository.ErrNotImplemented)
	}
	return l.List(ctx)
}

// Migrate aplica el schema si el backend tiene uno.
func (c *Container) Migrate(ctx context.Context) error {
	m, ok := c.Conn.(store.MigratableConnection)
	if !ok {
		return fmt.Errorf("%s: %w", c.Conn.Name(), repository.ErrNotImplemented)
	}
	return m.EnsureSchema(ctx)
}

func (c *Container) Close() error {
	if c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}
