package fetcher

import (
	"context"
	"time"

	"resty.dev/v3"
)

// Fetcher is the core interface that all provider adapters must implement.
// Each fetcher knows how to query one data provider for a fund registration
// code (CNPJ) and classify whatever comes back into a Result.
type Fetcher interface {
	// Fetch queries the provider for the given normalized (digits-only)
	// CNPJ over the shared HTTP client and returns a classified Result.
	// It never returns an error: failures are classified into the Result
	// so one provider can never abort the others.
	Fetch(ctx context.Context, client *resty.Client, cnpj string) Result

	// Source returns the provider name used as the key in the final
	// report. Must be stable and unique across fetchers.
	Source() string

	// Timeout returns the per-fetch time budget for this provider.
	// The coordinator bounds each fetch with it.
	Timeout() time.Duration
}
