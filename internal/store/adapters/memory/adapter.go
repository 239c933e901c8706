// Package memory implementa un almacenamiento in-process sobre go-cache.
// Útil para desarrollo, tests y el modo serve sin base de datos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/security/password"
	"github.com/rengifo/usermanager/internal/store"
)

func init() {
	store.RegisterAdapter(&memoryAdapter{})
}

type memoryAdapter struct{}

func (a *memoryAdapter) Name() string { return "memory" }

func (a *memoryAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.Connection, error) {
	return &memoryConnection{repo: New(cfg.DefaultTTL, cfg.HashParams())}, nil
}

type memoryConnection struct {
	repo *UserRepository
}

func (c *memoryConnection) Name() string                     { return "memory" }
func (c *memoryConnection) Ping(ctx context.Context) error   { return nil }
func (c *memoryConnection) Close() error                     { c.repo.c.Flush(); return nil }
func (c *memoryConnection) Users() repository.UserRepository { return c.repo }

type entry struct {
	seq    uint64
	record repository.Record
}

// UserRepository guarda registros con hash argon2id en memoria.
type UserRepository struct {
	c    *gocache.Cache
	hash password.Params
	seq  atomic.Uint64
}

// New crea el repositorio. ttl <= 0 significa sin expiración.
func New(ttl time.Duration, hash password.Params) *UserRepository {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &UserRepository{c: gocache.New(ttl, time.Minute), hash: hash}
}

func (r *UserRepository) SaveToDatabase(ctx context.Context, email, plain string) error {
	phc, err := password.Hash(r.hash, plain)
	if err != nil {
		return fmt.Errorf("memory: hash password: %w", err)
	}
	rec := repository.Record{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: phc,
		CreatedAt:    time.Now().UTC(),
	}
	r.c.SetDefault(rec.ID, entry{seq: r.seq.Add(1), record: rec})
	return nil
}

// List retorna los registros vigentes en orden de inserción.
func (r *UserRepository) List(ctx context.Context) ([]repository.Record, error) {
	items := r.c.Items()
	entries := make([]entry, 0, len(items))
	for _, it := range items {
		if e, ok := it.Object.(entry); ok {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]repository.Record, len(entries))
	for i, e := range entries {
		out[i] = e.record
	}
	return out, nil
}
