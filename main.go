package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fundfetcher/internal/anbima"
	"fundfetcher/internal/cnpj"
	"fundfetcher/internal/config"
	"fundfetcher/internal/coordinator"
	"fundfetcher/internal/cvm"
	"fundfetcher/internal/fetcher"
	"fundfetcher/internal/vortx"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fundfetcher <cnpj>")
		os.Exit(2)
	}
	rawCNPJ := os.Args[1]
	if cnpj.Normalize(rawCNPJ) == "" {
		log.Fatalf("CNPJ %q contains no digits", rawCNPJ)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// One fetcher per known provider
	fetchers := []fetcher.Fetcher{
		anbima.New(cfg.AnbimaBaseURL, cfg.AnbimaTimeout),
		vortx.New(cfg.VortxBaseURL, cfg.VortxTimeout),
		cvm.New(cfg.CVMBaseURL, cfg.CVMTimeout),
	}

	// Create coordinator
	coord := coordinator.New(cfg.ClientConfig(), fetchers)

	// Add timeout to prevent hanging indefinitely
	searchCtx, searchCancel := context.WithTimeout(ctx, cfg.BatchTimeout)
	defer searchCancel()

	// Run all fetchers concurrently
	rep, err := coord.Run(searchCtx, rawCNPJ)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize report: %v", err)
	}
	fmt.Println(string(out))
}
