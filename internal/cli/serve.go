package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/daemon"
)

var (
	serveHost  string
	servePort  int
	serveStore string
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveStore, "store", "", "Store backend: mongo, sqlite or memory (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the taskdeck API server",
	Long: `Start the REST API and the built-in web page.

The store connection is attempted once at startup; if it fails the process
exits instead of serving in a degraded mode.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	// Override config from flags
	if serveHost != "" {
		cfg.API.Host = serveHost
	}
	if servePort > 0 {
		cfg.API.Port = servePort
	}
	if serveStore != "" {
		cfg.Store.Backend = serveStore
	}

	d, err := daemon.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	d.Server.SetVersion(rootCmd.Version)

	return d.Serve(context.Background())
}
