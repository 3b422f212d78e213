package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/and161185/fishlog/internal/app"
	"github.com/and161185/fishlog/internal/config"
)

type cli struct {
	out io.Writer

	envFile string
	dsn     string
	debug   bool

	cfg config.Config
	log *zap.Logger

	open      func(ctx context.Context, cfg config.Config, log *zap.Logger) (*app.App, error)
	newLogger func(debug bool) (*zap.Logger, error)
}

func newCLI(out io.Writer) *cli {
	return &cli{out: out, open: app.New, newLogger: buildLogger}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "fishlog",
		Short:         "Fishing diary: trips, catches and spots",
		Version:       fmt.Sprintf("%s (%s)", version, buildDate),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "optional dotenv file")
	root.PersistentFlags().StringVar(&c.dsn, "dsn", "", "PostgreSQL DSN (overrides FISHLOG_DATABASE_DSN)")
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "development logging")

	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		cfg, err := config.Load(c.envFile)
		if err != nil {
			return err
		}
		if c.dsn != "" {
			cfg.DatabaseDSN = c.dsn
		}
		if c.debug {
			cfg.Debug = true
		}
		c.cfg = cfg

		log, err := c.newLogger(cfg.Debug)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		c.log = log
		return nil
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		if c.log != nil {
			_ = c.log.Sync()
		}
	}

	root.AddCommand(
		c.migrateCmd(),
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.diaryCmd(),
		c.catchCmd(),
		c.spotCmd(),
	)
	return root
}

func (c *cli) tokenPath() string { return filepath.Join(c.cfg.Dir(), "token.json") }

// withApp opens the backend for one command, bounded by the command timeout.
func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), c.cfg.CommandTimeout)
	defer cancel()

	a, err := c.open(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// withSession is withApp plus sign-in with the saved token, which loads the stores.
func (c *cli) withSession(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	if err := c.cfg.RequireSignKey(); err != nil {
		return err
	}
	tok, err := loadToken(c.tokenPath())
	if err != nil {
		return err
	}
	return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
		if err := a.SignIn(tok); err != nil {
			return err
		}
		return fn(ctx, a)
	})
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
