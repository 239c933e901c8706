package repository

import (
	"context"
	"time"
)

// Record es un candidato ya persistido por un backend real.
// Cada registro exitoso crea un Record nuevo: no hay deduplicación por email.
type Record struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository persiste un candidato validado.
type UserRepository interface {
	// SaveToDatabase registra el par email/password.
	// El adapter de consola nunca falla; los backends reales envuelven sus errores.
	SaveToDatabase(ctx context.Context, email, password string) error
}

// RecordLister es implementado por los adapters que pueden listar lo guardado.
type RecordLister interface {
	List(ctx context.Context) ([]Record, error)
}
