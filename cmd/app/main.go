package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ufoaiorg/ufoai-sub020/internal/config"
	"github.com/ufoaiorg/ufoai-sub020/internal/csi"
	"github.com/ufoaiorg/ufoai-sub020/internal/event"
	"github.com/ufoaiorg/ufoai-sub020/internal/loadout"
	"github.com/ufoaiorg/ufoai-sub020/internal/metrics"
	"github.com/ufoaiorg/ufoai-sub020/internal/server"
	"github.com/ufoaiorg/ufoai-sub020/internal/sse"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	for _, warning := range config.ValidateEnvWithWarnings() {
		slog.Warn(warning)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration invalid", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	reg, err := loadTables(cfg.CSIPath)
	if err != nil {
		return err
	}
	slog.Info("Definition tables loaded",
		"items", reg.NumItems(),
		"teams", len(reg.Teams()),
		"equipment", len(reg.EquipmentDefs()),
		"source", tablesSource(cfg.CSIPath))

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	genCfg := loadout.DefaultConfig()
	genCfg.PoolCacheSize = cfg.LoadoutCacheSize
	previewer, err := loadout.NewPreviewer(reg, genCfg, loadout.WithEventBus(bus))
	if err != nil {
		return err
	}
	previewer.SetDefaultSeed(cfg.RNGSeed)

	hub := sse.NewHub()
	hub.Subscribe(bus)

	srv := server.NewServer(cfg, reg, previewer, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errCh:
		hub.Stop()
		return err
	case sig := <-sc:
		slog.Info("Shutting down", "signal", sig.String())
	}

	// closing the hub ends open event streams so Shutdown can drain
	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(ctx)
}

func loadTables(path string) (*csi.Registry, error) {
	if path == "" {
		return csi.Default()
	}
	return csi.NewLoader().LoadFile(path)
}

func tablesSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
