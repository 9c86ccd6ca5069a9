// Package main is the entry point for the navdemo application, an
// interactive terminal playground for the navkit navigation engine.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/navkit/navkit"
	"github.com/navkit/navkit/core/route"
	"github.com/navkit/navkit/integration/devtools"
)

// defaultRoutes is the playground route table: a tab row with a stacked feed
// section, so both navigator policies can be exercised from the keyboard.
const defaultRoutes = `
routes:
  - name: Main
    path: /
    navigator:
      kind: tabs
      routes: [Home, Feed, Profile]
  - name: Home
    path: /home
  - name: Feed
    path: /feed
    navigator:
      kind: stack
      routes: [Feed, Post]
  - name: Post
    path: /posts/{id}
    query: [sort]
  - name: Profile
    path: /profile
`

type config struct {
	LogFile  string `env:"NAVKIT_DEMO_LOG_FILE"`
	Devtools bool   `env:"NAVKIT_DEMO_DEVTOOLS"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		routesFile   string
		withDevtools bool
	)

	cmd := &cobra.Command{
		Use:          "navdemo",
		Short:        "Interactive playground for the navkit navigation engine",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			var cfg config
			if err := env.Parse(&cfg); err != nil {
				return fmt.Errorf("parse environment: %w", err)
			}
			if withDevtools {
				cfg.Devtools = true
			}

			logger, cleanup, err := newLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer cleanup()

			set, err := loadRoutes(routesFile)
			if err != nil {
				return err
			}

			engine := navkit.New(set, navkit.WithLogger(logger))
			rt := engine.Runtime()
			home := rt.NewNode("Home", nil)
			feed := rt.NewNode("Feed", nil)
			profile := rt.NewNode("Profile", nil)
			engine.SetRoot(rt.NewNode("Main", nil, home, feed, profile))
			home.Focus()

			if cfg.Devtools {
				dtCfg, err := devtools.LoadConfig()
				if err != nil {
					return fmt.Errorf("devtools config: %w", err)
				}
				srv := devtools.New(engine, dtCfg, devtools.WithLogger(logger))
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				go func() {
					if err := srv.Run(ctx); err != nil {
						logger.Error("devtools server failed", slog.Any("error", err))
					}
				}()
			}

			p := tea.NewProgram(newModel(engine), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&routesFile, "routes", "", "YAML route table (default: built-in playground routes)")
	cmd.Flags().BoolVar(&withDevtools, "devtools", false, "serve the WebSocket inspector")
	return cmd
}

func loadRoutes(path string) (*route.Set, error) {
	if path == "" {
		return route.ParseSet([]byte(defaultRoutes))
	}
	set, err := route.LoadSetFile(path)
	if err != nil {
		return nil, fmt.Errorf("load routes from %s: %w", path, err)
	}
	return set, nil
}

// newLogger writes structured logs to a file when configured, and discards
// them otherwise; the TUI owns the terminal.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
