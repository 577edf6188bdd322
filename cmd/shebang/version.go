package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shebang/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include commit hash and build date")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show shebang build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "pretty", "json":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}

		if strings.ToLower(versionFormat) == "json" {
			payload := versionPayload{Tool: "shebang", Version: v}
			if versionShowFull {
				payload.GitCommit = strings.TrimSpace(version.GitCommit)
				payload.BuildDate = strings.TrimSpace(version.BuildDate)
			}
			return writeVersionJSON(cmd.OutOrStdout(), payload)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "shebang %s\n", v)
		if versionShowFull {
			if commit := strings.TrimSpace(version.GitCommit); commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
			}
			if date := strings.TrimSpace(version.BuildDate); date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)
			}
		}
		return nil
	},
}

func writeVersionJSON(w io.Writer, payload versionPayload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
