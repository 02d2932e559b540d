package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"ordersheet/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

// app is built by the root command before any subcommand runs.
type app struct {
	config cmd.Config
	logger *slog.Logger
	root   *cmd.CompositionRoot
}

func main() {
	a := &app{}
	err := newRootCommand(a).ExecuteContext(context.Background())
	if closeErr := a.close(); closeErr != nil {
		log.Errorf("ordersheet: close: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("ordersheet: %v", err)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ordersheet",
		Short:         "Order tracking backend over a spreadsheet row table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.init(c.Context())
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return a.serve(c.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API and the scheduled integrity audit",
			RunE: func(c *cobra.Command, _ []string) error {
				return a.serve(c.Context())
			},
		},
		&cobra.Command{
			Use:   "orders",
			Short: "Print the current orders, newest first",
			RunE: func(c *cobra.Command, _ []string) error {
				return a.printOrders(c.Context(), c.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "audit",
			Short: "Run the integrity audit once and print the findings",
			RunE: func(c *cobra.Command, _ []string) error {
				return a.audit(c.Context(), c.OutOrStdout())
			},
		},
	)
	return root
}

func (a *app) init(ctx context.Context) error {
	loadDotEnv()

	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	a.config = config
	a.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(a.logger)

	a.root, err = cmd.NewCompositionRoot(ctx, config, a.logger)
	return err
}

func (a *app) close() error {
	if a.root == nil {
		return nil
	}
	return a.root.Close()
}

// loadDotEnv loads .env when present; the environment always wins.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}
}
