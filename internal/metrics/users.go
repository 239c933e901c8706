package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UsersAdded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "usermanager",
		Name:      "users_added_total",
		Help:      "Usuarios validados, guardados y notificados",
	})

	UsersRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "usermanager",
		Name:      "users_rejected_total",
		Help:      "Candidatos rechazados por la validación",
	})

	UserErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "usermanager",
		Name:      "user_errors_total",
		Help:      "Fallas de backend durante el alta, por etapa (save | notify)",
	}, []string{"stage"})
)

// Register registra las métricas en reg (o el default si es nil).
// Registrar dos veces no es un error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{UsersAdded, UsersRejected, UserErrors} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}
