// Package main is the interactive Ekart shipment tracker. It loads the
// configuration, sets up logging and runs the prompt until the operator
// types exit or interrupts the process.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-tron/ekart-trace/console"
	"github.com/go-tron/ekart-trace/ekart"
	"github.com/go-tron/ekart-trace/internal/config"
	"github.com/go-tron/ekart-trace/pkg/logger"
	"github.com/spf13/cobra"
)

func rootCommand(stdin io.Reader) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "ekart-trace",
		Short:        "Look up Ekart shipments by tracking id",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			if err := logger.Setup(logger.Options{
				Environment: cfg.Environment,
				Level:       cfg.Log.Level,
				Output:      cmd.ErrOrStderr(),
			}); err != nil {
				return err
			}
			ctx := cmd.Context()
			defer func() {
				_ = logger.Get(ctx).Sync()
			}()

			out := cmd.OutOrStdout()
			loop := &console.Loop{
				In:        stdin,
				Out:       out,
				Presenter: console.NewPresenter(ekart.NewWithConfig(cfg), out),
			}
			loop.Run(ctx)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().String("url", config.DefaultUrl, "Tracking endpoint")
	cmd.Flags().Duration("timeout", 0, "Request timeout, 0 waits indefinitely")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// run is main without the process globals, so it can be driven from tests.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := rootCommand(stdin)
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd.ExecuteContext(ctx)
}

func main() {
	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
