// Package store provee el registry de adaptadores de persistencia de usuarios.
package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/security/password"
)

// Adapter crea conexiones para un driver de almacenamiento.
type Adapter interface {
	// Name retorna el nombre del driver ("console", "memory", "redis", "postgres").
	Name() string

	// Connect establece conexión con el almacenamiento.
	Connect(ctx context.Context, cfg AdapterConfig) (Connection, error)
}

// Connection representa una conexión activa.
type Connection interface {
	Name() string
	Ping(ctx context.Context) error
	Close() error

	Users() repository.UserRepository
}

// MigratableConnection es implementada por conexiones con schema propio.
type MigratableConnection interface {
	EnsureSchema(ctx context.Context) error
}

// AdapterConfig configuración para conectar a un almacenamiento.
type AdapterConfig struct {
	Name string

	// DSN connection string (postgres).
	DSN string

	// Out destino del adapter de consola. Default: os.Stdout.
	Out io.Writer

	// DefaultTTL de los registros en memoria (0 = sin expiración).
	DefaultTTL time.Duration

	Redis struct {
		Addr     string
		Password string
		DB       int
		Prefix   string
	}

	// Hash parámetros argon2id para los backends que guardan hash.
	// Zero value usa password.Default.
	Hash password.Params
}

// Output retorna Out o os.Stdout.
func (c AdapterConfig) Output() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// HashParams retorna Hash o password.Default.
func (c AdapterConfig) HashParams() password.Params {
	if c.Hash.KeyLen == 0 {
		return password.Default
	}
	return c.Hash
}

// ─── Registry Global ───

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// RegisterAdapter registra un adapter. Llamar en init() de cada adapter.
func RegisterAdapter(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := a.Name()
	if _, exists := adapters[name]; exists {
		panic(fmt.Sprintf("adapter: %q already registered", name))
	}
	adapters[name] = a
}

// GetAdapter obtiene un adapter por nombre.
func GetAdapter(name string) (Adapter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[name]
	return a, ok
}

// ListAdapters retorna los nombres registrados, ordenados.
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(adapters))
	for n := range adapters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Open resuelve el adapter cfg.Name y conecta.
func Open(ctx context.Context, cfg AdapterConfig) (Connection, error) {
	a, ok := GetAdapter(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("store: %w: %q", repository.ErrUnknownDriver, cfg.Name)
	}
	conn, err := a.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store: connect %s: %w", cfg.Name, err)
	}
	return conn, nil
}
