package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/and161185/fishlog/internal/app"
	"github.com/and161185/fishlog/internal/migrate"
	"github.com/and161185/fishlog/internal/session"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply backend schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.cfg.CommandTimeout)
			defer cancel()
			if err := migrate.Up(ctx, c.cfg.DatabaseDSN); err != nil {
				return err
			}
			v, err := migrate.Status(ctx, c.cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			return c.printJSON(map[string]int64{"schema_version": v})
		},
	}
}

func credentialFlags(cmd *cobra.Command, user, pwd *string) {
	cmd.Flags().StringVarP(user, "username", "u", "", "username")
	cmd.Flags().StringVarP(pwd, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

func (c *cli) registerCmd() *cobra.Command {
	var user, pwd string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, err := a.Auth.Register(ctx, user, pwd)
				if err != nil {
					return err
				}
				return c.printJSON(map[string]string{"user_id": id.String()})
			})
		},
	}
	credentialFlags(cmd, &user, &pwd)
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var user, pwd string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.RequireSignKey(); err != nil {
				return err
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				tok, err := a.Auth.Login(ctx, user, pwd)
				if err != nil {
					return err
				}
				if err := saveToken(c.tokenPath(), tok.AccessToken, tok.ExpiresAt); err != nil {
					return err
				}
				return c.printJSON(map[string]time.Time{"expires_at": tok.ExpiresAt})
			})
		},
	}
	credentialFlags(cmd, &user, &pwd)
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved access token",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := removeToken(c.tokenPath()); err != nil {
				return err
			}
			return c.printJSON(map[string]string{"status": "signed out"})
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user id",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := c.cfg.RequireSignKey(); err != nil {
				return err
			}
			tok, err := loadToken(c.tokenPath())
			if err != nil {
				return err
			}
			m := session.NewManager([]byte(c.cfg.JWTSignKey), c.log)
			if err := m.SignIn(tok); err != nil {
				return err
			}
			id, ok := m.UserID()
			if !ok {
				return errors.New("session expired")
			}
			return c.printJSON(map[string]string{"user_id": id.String()})
		},
	}
}
