package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tend-cli/internal/config"
	"tend-cli/internal/store"
	"tend-cli/internal/tui"
)

func NewRootCmd() *cobra.Command {
	var (
		filePath string
		theme    string
	)

	cmd := &cobra.Command{
		Use:          "tend",
		Short:        "A plain-text task manager for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive TUI on the default file (~/.tend/todo.md)
  tend

  # Use a different task file
  tend --file ~/notes/work.md

  # Show format and key-binding reference
  tend docs format
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) > 0 {
				return cmd.Help()
			}
			return runTUI(filePath, theme)
		},
	}

	cfg := config.Load(config.Path())

	cmd.PersistentFlags().StringVar(&filePath, "file", envOr("TEND_FILE", cfg.File), "Task file path (default: ~/.tend/todo.md)")
	cmd.PersistentFlags().StringVar(&theme, "theme", envOr("TEND_THEME", cfg.Theme), "Theme name (Default|Dracula|Catppuccin Mocha|Solarized Light)")

	cmd.AddCommand(newDocsCmd())

	return cmd
}

func runTUI(filePath, theme string) error {
	if filePath == "" {
		p, err := store.DefaultFilePath()
		if err != nil {
			return err
		}
		filePath = p
	}
	return tui.Run(tui.Options{FilePath: filePath, Theme: theme})
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
