package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rengifo/usermanager/internal/app"
	"github.com/rengifo/usermanager/internal/config"
	"github.com/rengifo/usermanager/internal/demo"
	"github.com/rengifo/usermanager/internal/legacy"
	"github.com/rengifo/usermanager/internal/observability/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd(out io.Writer) *cobra.Command {
	var cfgPath string
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "usermanager",
		Short:         "Alta de usuarios: valida, guarda y notifica",
		Long:          "Sin subcomando corre la demo con los cuatro casos canned contra el UserManager refactorizado.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = c
			logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: cfg.App.Name})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cfg, out)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", os.Getenv("USERMANAGER_CONFIG"), "Path al YAML de configuración (env USERMANAGER_CONFIG)")
	root.SetOut(out)

	cfgFn := func() *config.Config { return cfg }
	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Corre los cuatro casos canned (UserManager refactorizado)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd.Context(), cfg, out)
			},
		},
		&cobra.Command{
			Use:   "legacy",
			Short: "Corre los cuatro casos canned contra la versión god class",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m := legacy.NewUserManager(out)
				return demo.Run(cmd.Context(), out, func(_ context.Context, email, password string) error {
					m.AddUser(email, password)
					return nil
				})
			},
		},
		newAddCmd(cfgFn, out),
		newServeCmd(cfgFn, out),
		newTokenCmd(cfgFn, out),
		newMigrateCmd(cfgFn, out),
		newEncryptCmd(cfgFn, out),
	)
	return root
}

func runDemo(ctx context.Context, cfg *config.Config, out io.Writer) error {
	c, err := app.New(ctx, cfg, app.Options{Out: out})
	if err != nil {
		return err
	}
	defer c.Close()

	return demo.Run(ctx, out, func(ctx context.Context, email, password string) error {
		_, err := c.Users.AddUser(ctx, email, password)
		return err
	})
}
