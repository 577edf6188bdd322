package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shebang/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "shebang [path]",
	Short: "Terminal Markdown editor with live preview and linting",
	Long: `Shebang is a terminal IDE for Markdown: a file explorer, tabbed editing
with live preview, an embedded shell, and a Markdown linter.

Run it with no arguments to open the current workspace, with a directory to
open that workspace, or with a file to open it directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("ui", "auto", "interactive interface (auto|on|off)")

	cobra.OnInitialize(applyColorMode)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyColorMode() {
	mode, err := rootCmd.PersistentFlags().GetString("color")
	if err != nil {
		return
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
