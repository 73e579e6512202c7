// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// shopfront-bot is the storefront service: it authorizes and executes
// catalog commands delivered over HTTP by the platform gateway, keeps
// the catalog file durable, and mirrors products into showcase cards.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
	"github.com/shopfront-foundation/shopfront/lib/command"
	"github.com/shopfront-foundation/shopfront/lib/config"
	"github.com/shopfront-foundation/shopfront/lib/policy"
	"github.com/shopfront-foundation/shopfront/lib/process"
	"github.com/shopfront-foundation/shopfront/lib/showcase"
	"github.com/shopfront-foundation/shopfront/lib/trust"
	"github.com/shopfront-foundation/shopfront/lib/version"
	"github.com/shopfront-foundation/shopfront/messaging"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		configPath  string
		listenAddr  string
		showVersion bool
	)
	pflag.StringVar(&configPath, "config", "", "path to shopfront.yaml (default: $SHOPFRONT_CONFIG)")
	pflag.StringVar(&listenAddr, "listen", "127.0.0.1:8790", "address for the interaction listener")
	pflag.BoolVar(&showVersion, "version", false, "print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Println("shopfront-bot " + version.Info())
		return nil
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	token, err := cfg.Token()
	if err != nil {
		return err
	}

	client, err := messaging.NewClient(messaging.ClientConfig{
		BaseURL: cfg.Platform.BaseURL,
		Token:   token,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Catalog.File, logger)
	if err != nil {
		return err
	}

	surface := showcase.NewPlatformSurface(client, cfg.Showcase.StorageChannel)
	manager := showcase.NewManager(surface, cfg.Showcase.PlaceholderURL, logger)

	policyStore := trust.NewStore(cfg.Trust.PolicyFile)
	guard := policy.NewGuard(policyStore, logger)

	router := command.NewRouter(guard, logger)
	command.NewHandlers(store, manager, cfg.Showcase.Channel, logger).Register(router)

	// Fail now, not on the first command, if the trust policy is
	// broken. The per-decision reload still picks up later edits.
	if _, err := policyStore.Load(); err != nil {
		return fmt.Errorf("trust policy check: %w", err)
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", listenAddr, err)
	}

	server := &http.Server{
		Handler:           newInteractionHandler(router, store, manager, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(listener)
	}()

	logger.Info("shopfront running",
		"listen", listener.Addr().String(),
		"catalog", cfg.Catalog.File,
		"policy", cfg.Trust.PolicyFile,
		"version", version.Short(),
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
