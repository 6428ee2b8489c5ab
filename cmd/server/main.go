// Package main - Entry point for the NAVA Ops API server
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"nava-ops/adapters/registry"
	"nava-ops/adapters/statistics"
	"nava-ops/api"
	"nava-ops/core/pricing"
	"nava-ops/internal/config"
	"nava-ops/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Fatal("loading configuration", zap.Error(err))
	}
	config.Set(cfg)
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initializing logging", zap.Error(err))
	}
	defer logging.Sync()

	plan, err := loadPlan(cfg)
	if err != nil {
		logging.Fatal("loading plan catalog", zap.Error(err))
	}
	calc := pricing.NewCalculator(plan)
	logging.Info("active plan loaded",
		zap.String("plan", plan.PlanName),
		zap.String("currency", plan.CurrencyCode.String()))

	hub := registry.NewHub()
	reg, provider, err := openBackends(cfg, hub)
	if err != nil {
		logging.Fatal("opening backends", zap.Error(err))
	}
	defer reg.Close()
	defer provider.Close()

	server := api.NewServer(version, calc, reg, statistics.NewCollector(provider), hub)

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, listen); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}

// loadPlan resolves the active plan from the catalog, falling back to the
// built-in standard plan when no catalog file exists
func loadPlan(cfg *config.Config) (pricing.Config, error) {
	path := cfg.Catalog.Path
	if path == "" {
		return pricing.Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Warn("plan catalog not found, using built-in standard plan", zap.String("path", path))
		return pricing.Default(), nil
	}
	return pricing.LoadCatalog(path)
}

// openBackends selects Postgres when a DSN is configured, in-memory otherwise
func openBackends(cfg *config.Config, hub *registry.Hub) (registry.Registry, statistics.Provider, error) {
	if cfg.Database.DSN == "" {
		logging.Warn("no database configured, using in-memory backends")
		return registry.NewMemoryRegistry(hub), statistics.NewMemoryProvider(), nil
	}

	reg, err := registry.NewPostgresRegistry(cfg.Database.DSN, hub)
	if err != nil {
		return nil, nil, err
	}
	provider, err := statistics.NewPostgresProvider(cfg.Database.DSN, cfg.Statistics.Period())
	if err != nil {
		reg.Close()
		return nil, nil, err
	}
	return reg, provider, nil
}
