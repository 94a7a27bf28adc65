package main

import (
	"os"
	"path/filepath"
	"testing"

	"vectorprime/pkg/config"
	"vectorprime/pkg/server"

	"github.com/samber/do"
)

func TestInjectorBuildsServer(t *testing.T) {
	cfg := config.Default()
	cfg.Server.CatalogPath = filepath.Join(t.TempDir(), "missing.json")
	cfg.Server.ListenAddr = "127.0.0.1:0"

	di := newInjector(cfg)
	defer di.Shutdown()

	if _, err := do.Invoke[*server.Server](di); err != nil {
		t.Fatalf("Expected server to resolve, got %v", err)
	}
}

func TestInjectorReportsBadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := config.Default()
	cfg.Server.CatalogPath = path

	di := newInjector(cfg)
	defer di.Shutdown()

	if _, err := do.Invoke[*server.Server](di); err == nil {
		t.Fatal("Expected error for a corrupt catalog")
	}
}
