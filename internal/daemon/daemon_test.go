package daemon

import (
	"context"
	"testing"
)

func TestOpenStoreMemory(t *testing.T) {
	st, err := openStore(StoreConfig{Backend: "memory"})
	if err != nil {
		t.Fatalf("openStore(memory): %v", err)
	}
	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestOpenStoreSqlite(t *testing.T) {
	st, err := openStore(StoreConfig{Backend: "sqlite", Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("openStore(sqlite): %v", err)
	}
	defer st.Close(context.Background())

	task, err := st.Create(context.Background(), "from daemon wiring")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == "" {
		t.Error("sqlite store assigned no id")
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	if _, err := openStore(StoreConfig{Backend: "cassandra"}); err == nil {
		t.Error("openStore should reject an unknown backend")
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Backend = "memory"

	d, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	defer d.Close()

	if d.Server == nil || d.Store == nil {
		t.Error("daemon not fully wired")
	}
}
