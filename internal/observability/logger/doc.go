// Package logger expone un logger Zap singleton con scoping por contexto.
//
// Los logs siempre salen por stderr: stdout queda reservado para la salida
// de consola del flujo de registro (repositorio y notificador de consola).
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
// En services/handlers:
//
//	log := logger.From(ctx).With(logger.Op("UserManager.AddUser"))
//	log.Info("user added", logger.Driver("console"))
package logger
