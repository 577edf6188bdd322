package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shebang/internal/config"
	"shebang/internal/ui"
	"shebang/internal/workspace"
)

func init() {
	rootCmd.Flags().Bool("no-restore", false, "do not reopen files from the previous session")
	rootCmd.Flags().String("theme", "", "override the configured theme")
}

// runEdit resolves the workspace and launches the editor.
func runEdit(cmd *cobra.Command, args []string) error {
	uiFlag, err := cmd.Root().PersistentFlags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if !shouldUseTUI(mode) {
		return fmt.Errorf("no interactive terminal; use `shebang lint` or `shebang render` for non-interactive output")
	}

	noRestore, err := cmd.Flags().GetBool("no-restore")
	if err != nil {
		return fmt.Errorf("failed to get no-restore flag: %w", err)
	}
	themeOverride, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}

	startDir := "."
	openPath := ""
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		switch {
		case err != nil:
			return fmt.Errorf("cannot open %s: %w", args[0], err)
		case info.IsDir():
			startDir = args[0]
		default:
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			openPath = abs
			startDir = filepath.Dir(abs)
		}
	}

	root, err := workspace.FindRoot(startDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Join(root, workspace.ManifestName))
	if err != nil {
		return err
	}
	if themeOverride != "" {
		cfg.UI.Theme = themeOverride
	}

	return ui.Run(ui.Options{
		Root:     root,
		OpenPath: openPath,
		Config:   cfg,
		Restore:  !noRestore,
	})
}
