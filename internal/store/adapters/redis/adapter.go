// Package redis implementa el almacenamiento sobre una lista Redis:
// cada registro se agrega con RPUSH a "<prefix>:users" como JSON.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/security/password"
	"github.com/rengifo/usermanager/internal/store"
)

func init() {
	store.RegisterAdapter(&redisAdapter{})
}

type redisAdapter struct{}

func (a *redisAdapter) Name() string { return "redis" }

func (a *redisAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.Connection, error) {
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("redis: %w: addr is required", repository.ErrNoDatabase)
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return &redisConnection{
		client: client,
		repo:   NewUserRepository(client, cfg.Redis.Prefix, cfg.HashParams()),
	}, nil
}

type redisConnection struct {
	client *goredis.Client
	repo   *UserRepository
}

func (c *redisConnection) Name() string { return "redis" }
func (c *redisConnection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
func (c *redisConnection) Close() error                     { return c.client.Close() }
func (c *redisConnection) Users() repository.UserRepository { return c.repo }

// UserRepository persiste registros en una lista Redis.
type UserRepository struct {
	client goredis.Cmdable
	key    string
	hash   password.Params
}

// NewUserRepository crea el repositorio sobre cualquier goredis.Cmdable.
func NewUserRepository(client goredis.Cmdable, prefix string, hash password.Params) *UserRepository {
	return &UserRepository{client: client, key: ListKey(prefix), hash: hash}
}

// ListKey retorna la key de la lista de usuarios para el prefijo dado.
func ListKey(prefix string) string {
	if prefix == "" {
		return "users"
	}
	return prefix + ":users"
}

func (r *UserRepository) SaveToDatabase(ctx context.Context, email, plain string) error {
	phc, err := password.Hash(r.hash, plain)
	if err != nil {
		return fmt.Errorf("redis: hash password: %w", err)
	}
	rec := repository.Record{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: phc,
		CreatedAt:    time.Now().UTC(),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("redis: encode record: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, b).Err(); err != nil {
		return fmt.Errorf("redis: rpush %s: %w", r.key, err)
	}
	return nil
}

// List retorna todos los registros en orden de inserción.
func (r *UserRepository) List(ctx context.Context) ([]repository.Record, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: lrange %s: %w", r.key, err)
	}
	out := make([]repository.Record, 0, len(raw))
	for _, s := range raw {
		var rec repository.Record
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("redis: decode record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
