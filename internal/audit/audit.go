// Package audit registra eventos de negocio en un logger "audit" separado.
package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/rengifo/usermanager/internal/observability/logger"
)

// Eventos del alta de usuarios.
const (
	EventUserAdded    = "user.added"
	EventUserRejected = "user.rejected"
	EventUserFailed   = "user.failed"
)

// Log escribe un evento de auditoría. Toma request_id y demás campos del
// logger del contexto si el middleware lo inyectó.
func Log(ctx context.Context, event string, fields ...zap.Field) {
	logger.From(ctx).Named("audit").Info(event, append(fields, zap.String("event", event))...)
}
