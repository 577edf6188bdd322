package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shebang/internal/preview"
	"shebang/internal/source"
)

var renderCmd = &cobra.Command{
	Use:   "render <file.md>",
	Short: "Render a Markdown file to styled terminal output",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Int("width", 0, "word-wrap width (0=terminal width)")
	renderCmd.Flags().String("style", "auto", "render style (auto|dark|light|notty)")
}

func runRender(cmd *cobra.Command, args []string) error {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	style, err := cmd.Flags().GetString("style")
	if err != nil {
		return fmt.Errorf("failed to get style flag: %w", err)
	}

	if width <= 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if !isTerminal(os.Stdout) && style == "auto" {
		style = "notty"
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	renderer, err := preview.New(style, width)
	if err != nil {
		return err
	}
	out, err := renderer.Render(string(fileSet.Get(id).Content))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
