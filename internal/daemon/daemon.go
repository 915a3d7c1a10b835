package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/store/memory"
	"github.com/taskdeck/taskdeck/internal/store/mongo"
	"github.com/taskdeck/taskdeck/internal/store/sqlite"
)

// Daemon wires the store and the API server together.
type Daemon struct {
	Config Config
	Store  store.Store
	Server *api.Server
	cancel context.CancelFunc
}

// New creates a Daemon from the on-disk configuration.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration. The store
// connection is attempted exactly once; a failure here is returned to the
// caller, which exits rather than serving degraded.
func NewWithConfig(cfg Config) (*Daemon, error) {
	st, err := openStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	srv := api.NewServer(st)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config: cfg,
		Store:  st,
		Server: srv,
	}, nil
}

// openStore connects the configured backend.
func openStore(cfg StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "mongo":
		return mongo.Open(context.Background(), cfg.URI, cfg.Database, cfg.Collection)
	case "sqlite":
		return sqlite.Open(cfg.Dir)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		if err := d.Store.Close(shutdownCtx); err != nil {
			log.Printf("[daemon] store close: %v", err)
		}
	}()

	log.Printf("[daemon] taskdeck serving on http://%s (store: %s)", addr, d.Config.Store.Backend)
	if d.Config.Telemetry.Prometheus {
		log.Printf("[daemon] metrics: http://%s/metrics", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down the daemon's resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = d.Store.Close(ctx)
	}
}
