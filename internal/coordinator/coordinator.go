package coordinator

import (
	"context"
	"fmt"
	"sync"

	"fundfetcher/internal/cnpj"
	"fundfetcher/internal/fetcher"
	"fundfetcher/internal/report"
)

// Coordinator fans one search out to all provider fetchers concurrently and
// aggregates their classified results into a report.
type Coordinator struct {
	clientCfg fetcher.ClientConfig
	fetchers  []fetcher.Fetcher
}

// New creates a new Coordinator with the given transport configuration and fetchers
func New(clientCfg fetcher.ClientConfig, fetchers []fetcher.Fetcher) *Coordinator {
	return &Coordinator{
		clientCfg: clientCfg,
		fetchers:  fetchers,
	}
}

// Run executes all fetchers concurrently for one fund identifier and merges
// their results into a report keyed by source name.
//
// Each fetcher runs in its own goroutine, bounded by its own timeout, over
// one shared HTTP client scoped to this call. A fetcher that fails or times
// out resolves to a failure-classified result; it never cancels its
// siblings and never escapes as an error. Run itself errors only when the
// batch cannot start (no fetchers, identifier without digits) or when ctx
// is canceled from outside — in that case no partial report is returned.
func (c *Coordinator) Run(ctx context.Context, rawIdentifier string) (*report.Report, error) {
	if len(c.fetchers) == 0 {
		return nil, fmt.Errorf("no fetchers configured")
	}

	id := cnpj.Normalize(rawIdentifier)
	if id == "" {
		return nil, fmt.Errorf("identifier %q contains no digits", rawIdentifier)
	}

	// One shared client for the whole batch, released on every exit path.
	client := fetcher.NewHTTPClient(c.clientCfg)
	defer client.Close()

	// Create a channel for collecting results
	resultChan := make(chan fetcher.Result, len(c.fetchers))

	// WaitGroup to track all worker goroutines
	var wg sync.WaitGroup

	// Launch a goroutine for each fetcher
	for _, f := range c.fetchers {
		wg.Add(1)
		go func(ft fetcher.Fetcher) {
			defer wg.Done()

			// Bound this fetch with the provider's own budget.
			fetchCtx, cancel := context.WithTimeout(ctx, ft.Timeout())
			defer cancel()

			resultChan <- ft.Fetch(fetchCtx, client, id)
		}(f)
	}

	// Close the result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results as they arrive
	results := make([]fetcher.Result, 0, len(c.fetchers))
	for result := range resultChan {
		results = append(results, result)
	}

	// An outer cancellation aborts the whole batch: surface it instead of
	// handing back a report full of cancellation artifacts.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search aborted: %w", err)
	}

	return report.Merge(rawIdentifier, results), nil
}
