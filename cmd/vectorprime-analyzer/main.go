package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vectorprime/pkg/catalog"
	"vectorprime/pkg/config"
	"vectorprime/pkg/logging"
	"vectorprime/pkg/server"
	"vectorprime/pkg/version"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "path to config.json")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info("vectorprime-analyzer"))
		return
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if _, err := logging.InitWithConsole(cfg, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("analyzer_exit", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	di := newInjector(cfg)
	defer di.Shutdown()

	srv, err := do.Invoke[*server.Server](di)
	if err != nil {
		return err
	}

	slog.Info("analyzer_started",
		"version", version.Summary(),
		"addr", cfg.Server.ListenAddr,
		"catalog", cfg.Server.CatalogPath,
		"catalog_reload_seconds", cfg.Server.CatalogReloadSeconds,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	if cfg.Server.CatalogReloadSeconds > 0 {
		analyzer := do.MustInvoke[*server.Analyzer](di)
		interval := time.Duration(cfg.Server.CatalogReloadSeconds) * time.Second
		reloader := server.NewCatalogReloader(cfg.Server.CatalogPath, interval, analyzer)
		g.Go(func() error {
			return reloader.Run(ctx)
		})
	}
	return g.Wait()
}

func newInjector(cfg config.Config) *do.Injector {
	di := do.New()
	do.ProvideValue(di, cfg)
	do.Provide(di, provideCatalog)
	do.Provide(di, provideAnalyzer)
	do.Provide(di, provideServer)
	return di
}

func provideCatalog(di *do.Injector) (catalog.Catalog, error) {
	cfg := do.MustInvoke[config.Config](di)
	return catalog.Load(cfg.Server.CatalogPath)
}

func provideAnalyzer(di *do.Injector) (*server.Analyzer, error) {
	cfg := do.MustInvoke[config.Config](di)
	cat, err := do.Invoke[catalog.Catalog](di)
	if err != nil {
		return nil, err
	}
	return server.NewAnalyzer(cat, server.AnalyzerOptions{
		Volume:        cfg.Server.VolumeUnits,
		ThinkingDelay: time.Duration(cfg.Server.ThinkingDelayMS) * time.Millisecond,
	}), nil
}

func provideServer(di *do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[config.Config](di)
	analyzer, err := do.Invoke[*server.Analyzer](di)
	if err != nil {
		return nil, err
	}
	router := server.NewRouter(analyzer, server.RouterOptions{
		MaxUploadBytes: int64(cfg.Server.MaxUploadMB) << 20,
		CORSOrigins:    cfg.Server.CORSOrigins,
	})
	return server.New(cfg.Server.ListenAddr, router), nil
}
