package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nvelliott/flyt/internal/daemon"
	"github.com/nvelliott/flyt/internal/logging"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the flyt event broker",
	Long: `Runs the unix-socket event broker that relays board changes
between flyt instances, so every open board refreshes when one of them
writes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon()
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon() error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	sock, err := socketPath()
	if err != nil {
		return fmt.Errorf("failed to resolve socket path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(sock), 0700); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	server, err := daemon.NewServer(sock)
	if err != nil {
		return fmt.Errorf("failed to create broker: %w", err)
	}

	slog.Info("flyt broker starting", "socket", sock, "pid", os.Getpid())

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("broker error: %w", err)
	}

	slog.Info("flyt broker shut down gracefully")
	return nil
}
