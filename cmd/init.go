package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nvelliott/flyt/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the starter workflow file",
	Long: `Writes a starter workflow file with three statuses (To Do,
In Progress, Done) and a sample required field. Edit it to define your
own statuses and custom fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing workflow file")
	rootCmd.AddCommand(initCmd)
}

func runInit() error {
	path, err := config.WorkflowPath()
	if err != nil {
		return fmt.Errorf("failed to resolve workflow path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.DefaultWorkflowYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write workflow file: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
