package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/clinicore/hms/internal/access"
	"github.com/clinicore/hms/internal/console"
	"github.com/clinicore/hms/internal/directory"
	"github.com/clinicore/hms/internal/patients"
	"github.com/clinicore/hms/internal/session"
	"github.com/clinicore/hms/pkg/config"
	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/monitoring"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.WithField("version", "1.0.0").Info("Starting HMS console")

	// Initialize metrics
	metrics := monitoring.NewMetricsCollector()
	if cfg.Monitoring.Enabled {
		server := monitoring.StartMetricsServer(cfg.Monitoring.Port, cfg.Monitoring.MetricsPath)
		log.WithField("port", cfg.Monitoring.Port).Info("Metrics listener started")
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()
	}

	// Initialize domain components
	dir := directory.New(cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, log)
	registry := patients.NewRegistry(log)
	controller := access.NewController()
	coordinator := session.NewCoordinator(dir, registry, controller, metrics, log)

	fmt.Printf("Default admin account created: username=%q\n", cfg.Bootstrap.AdminUsername)

	// Run the interactive shell until the user exits
	shell := console.New(coordinator, os.Stdin, os.Stdout, log)
	shell.Run()

	log.Info("HMS console stopped")
}
