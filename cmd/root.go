package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/nvelliott/flyt/internal/app"
	"github.com/nvelliott/flyt/internal/config"
	"github.com/nvelliott/flyt/internal/events"
	"github.com/nvelliott/flyt/internal/logging"
	"github.com/nvelliott/flyt/internal/store"
	"github.com/nvelliott/flyt/internal/tui/components"
	"github.com/nvelliott/flyt/internal/tui/core"
)

var rootCmd = &cobra.Command{
	Use:   "flyt",
	Short: "Flyt - a terminal kanban board with workflow validation",
	Long: `Flyt is a terminal kanban board. Issues move between workflow
statuses by keyboard or mouse drag, with every move validated against
the configured workflow: closed issues stay put and required fields
gate their target status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// socketPath returns the broker socket location under ~/.flyt
func socketPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".flyt", "flyt.sock"), nil
}

func runBoard() error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model, err := config.LoadWorkflowOrDefault()
	if err != nil {
		return fmt.Errorf("failed to load workflow: %w", err)
	}

	db, err := store.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := store.NewIssueRepo(db, model)

	// The event client is optional: without a running broker the board
	// still works, it just doesn't see other instances.
	var eventClient *events.Client
	var eventChan <-chan events.Event
	if sock, err := socketPath(); err == nil {
		if client, err := events.NewClient(sock); err == nil {
			if err := client.Connect(ctx); err == nil {
				eventClient = client
				if ch, err := client.Listen(ctx); err == nil {
					eventChan = ch
				}
			} else {
				slog.Info("event broker not reachable, running standalone", "error", err)
			}
		}
	}

	application := app.New(repo, publisherOrNil(eventClient), model)
	defer application.Close()

	components.InitStyles(cfg.Theme)

	p := tea.NewProgram(core.New(ctx, application, cfg, eventChan))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// publisherOrNil avoids wrapping a nil *Client in a non-nil interface
func publisherOrNil(c *events.Client) events.Publisher {
	if c == nil {
		return nil
	}
	return c
}
