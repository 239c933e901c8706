// Package pg implementa el almacenamiento PostgreSQL sobre pgxpool.
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/security/password"
	"github.com/rengifo/usermanager/internal/store"
	migrations "github.com/rengifo/usermanager/migrations/postgres"
)

func init() {
	store.RegisterAdapter(&postgresAdapter{})
}

type postgresAdapter struct{}

func (a *postgresAdapter) Name() string { return "postgres" }

func (a *postgresAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.Connection, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("pg: %w: dsn is required", repository.ErrNoDatabase)
	}
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping: %w", err)
	}
	return &pgConnection{pool: pool, repo: &userRepo{pool: pool, hash: cfg.HashParams()}}, nil
}

type pgConnection struct {
	pool *pgxpool.Pool
	repo *userRepo
}

func (c *pgConnection) Name() string                     { return "postgres" }
func (c *pgConnection) Ping(ctx context.Context) error   { return c.pool.Ping(ctx) }
func (c *pgConnection) Close() error                     { c.pool.Close(); return nil }
func (c *pgConnection) Users() repository.UserRepository { return c.repo }

// EnsureSchema aplica las migraciones embebidas en orden.
func (c *pgConnection) EnsureSchema(ctx context.Context) error {
	files, err := migrations.Ordered()
	if err != nil {
		return fmt.Errorf("pg: read migrations: %w", err)
	}
	for _, f := range files {
		if _, err := c.pool.Exec(ctx, f.SQL); err != nil {
			return fmt.Errorf("pg: apply %s: %w", f.Name, err)
		}
	}
	return nil
}

type userRepo struct {
	pool *pgxpool.Pool
	hash password.Params
}

const insertUser = `INSERT INTO app_user (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`

const listUsers = `SELECT id, email, password_hash, created_at FROM app_user ORDER BY created_at, id`

func (r *userRepo) SaveToDatabase(ctx context.Context, email, plain string) error {
	phc, err := password.Hash(r.hash, plain)
	if err != nil {
		return fmt.Errorf("pg: hash password: %w", err)
	}
	if _, err := r.pool.Exec(ctx, insertUser, uuid.NewString(), email, phc, time.Now().UTC()); err != nil {
		return fmt.Errorf("pg: insert user: %w", err)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]repository.Record, error) {
	rows, err := r.pool.Query(ctx, listUsers)
	if err != nil {
		return nil, fmt.Errorf("pg: list users: %w", err)
	}
	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.Record, error) {
		var rec repository.Record
		err := row.Scan(&rec.ID, &rec.Email, &rec.PasswordHash, &rec.CreatedAt)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("pg: scan users: %w", err)
	}
	return recs, nil
}
