package logger

import (
	"time"

	"go.uber.org/zap"

	"github.com/rengifo/usermanager/internal/util"
)

// ─── HTTP ───

func RequestID(v string) zap.Field       { return zap.String("request_id", v) }
func Method(v string) zap.Field          { return zap.String("method", v) }
func Path(v string) zap.Field            { return zap.String("path", v) }
func Status(v int) zap.Field             { return zap.Int("status", v) }
func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

// ─── Registro de usuarios ───

// Email crea un campo con el email del candidato enmascarado.
func Email(v string) zap.Field { return zap.String("email", util.MaskEmail(v)) }

// RecordID crea un campo para el ID del registro persistido.
func RecordID(v string) zap.Field { return zap.String("record_id", v) }

// Outcome crea un campo para el resultado de AddUser ("added" | "rejected").
func Outcome(v string) zap.Field { return zap.String("outcome", v) }

// Driver crea un campo para el backend activo (console, memory, redis, postgres, smtp).
func Driver(v string) zap.Field { return zap.String("driver", v) }

// ─── Sistema ───

func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }
func Layer(v string) zap.Field     { return zap.String("layer", v) }
func Err(err error) zap.Field      { return zap.Error(err) }

func String(key, v string) zap.Field    { return zap.String(key, v) }
func Int(key string, v int) zap.Field   { return zap.Int(key, v) }
func Bool(key string, v bool) zap.Field { return zap.Bool(key, v) }
func Any(key string, v any) zap.Field   { return zap.Any(key, v) }
