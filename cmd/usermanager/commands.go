package main

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/rengifo/usermanager/internal/app"
	"github.com/rengifo/usermanager/internal/config"
	httpapi "github.com/rengifo/usermanager/internal/http"
	"github.com/rengifo/usermanager/internal/jwt"
	"github.com/rengifo/usermanager/internal/metrics"
	"github.com/rengifo/usermanager/internal/security/secretbox"
)

func newAddCmd(cfg func() *config.Config, out io.Writer) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Da de alta un usuario con los backends configurados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.New(cmd.Context(), cfg(), app.Options{Out: out})
			if err != nil {
				return err
			}
			defer c.Close()
			// El rechazo ya quedó impreso; no cambia el exit code.
			_, err = c.Users.AddUser(cmd.Context(), email, password)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email del usuario")
	cmd.Flags().StringVar(&password, "password", "", "Password del usuario")
	return cmd
}

func newServeCmd(cfg func() *config.Config, out io.Writer) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expone /v1/users, /readyz y /metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := cfg()
			if addr == "" {
				addr = conf.Server.Addr
			}

			c, err := app.New(cmd.Context(), conf, app.Options{Out: out})
			if err != nil {
				return err
			}
			defer c.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			if err := metrics.Register(reg); err != nil {
				return err
			}
			metricsHandler, err := httpapi.RegisterMetrics(reg)
			if err != nil {
				return err
			}

			var admin *jwt.AdminIssuer
			if conf.Server.AdminSecret != "" {
				ttl, err := time.ParseDuration(conf.Server.AdminTTL)
				if err != nil {
					return fmt.Errorf("server.admin_ttl: %w", err)
				}
				if admin, err = jwt.NewAdminIssuer(conf.Server.AdminSecret, ttl); err != nil {
					return err
				}
			}

			h := httpapi.NewRouter(httpapi.RouterDeps{
				Users:   httpapi.NewUsersHandler(c.Users, c.Records),
				Admin:   admin,
				Metrics: metricsHandler,
				Ready:   c.Conn.Ping,
			})
			return httpapi.Serve(cmd.Context(), addr, h)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Dirección de escucha (default server.addr)")
	return cmd
}

func newTokenCmd(cfg func() *config.Config, out io.Writer) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un bearer token de admin para serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := cfg()
			ttl, err := time.ParseDuration(conf.Server.AdminTTL)
			if err != nil {
				return fmt.Errorf("server.admin_ttl: %w", err)
			}
			iss, err := jwt.NewAdminIssuer(conf.Server.AdminSecret, ttl)
			if err != nil {
				return err
			}
			tok, exp, err := iss.Issue(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "Subject (sub) del token")
	return cmd
}

func newMigrateCmd(cfg func() *config.Config, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el schema del backend (postgres)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.New(cmd.Context(), cfg(), app.Options{Out: out})
			if err != nil {
				return err
			}
			defer c.Close()
			if err := c.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "schema up to date")
			return nil
		},
	}
}

// newEncryptCmd cifra un secreto para usarlo como "enc:..." en la config.
func newEncryptCmd(cfg func() *config.Config, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Cifra un secreto con security.master_key (USERMANAGER_MASTER_KEY)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretbox.ParseKey(cfg().Security.MasterKey)
			if err != nil {
				return err
			}
			sealed, err := secretbox.Encrypt(key, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, secretbox.Prefix+sealed)
			return nil
		},
	}
}
