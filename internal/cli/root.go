// Package cli implements the taskdeck command-line interface using Cobra.
// `serve` runs the API server; the other subcommands talk to a running
// server over HTTP.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "taskdeck — a small task tracker",
	Long: `taskdeck is a task tracker in one binary: a REST API with a built-in
web page, plus these commands for the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// serverURL overrides the server address for client subcommands.
var serverURL string

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"Server address (default http://<api.host>:<api.port> from config)")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
