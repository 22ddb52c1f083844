package testutil

import (
	"context"
	"time"

	"resty.dev/v3"

	"fundfetcher/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc   func(ctx context.Context, client *resty.Client, cnpj string) fetcher.Result
	SourceName  string
	FetchBudget time.Duration
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, client *resty.Client, cnpj string) fetcher.Result {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, client, cnpj)
	}
	return fetcher.Result{Source: m.Source(), Status: fetcher.StatusSuccess}
}

// Source implements the Fetcher interface
func (m *MockFetcher) Source() string {
	if m.SourceName != "" {
		return m.SourceName
	}
	return "mock"
}

// Timeout implements the Fetcher interface
func (m *MockFetcher) Timeout() time.Duration {
	if m.FetchBudget > 0 {
		return m.FetchBudget
	}
	return time.Second
}

// NewMockFetcher creates a simple mock fetcher that always returns the given result
func NewMockFetcher(source string, result fetcher.Result) fetcher.Fetcher {
	return &MockFetcher{
		SourceName: source,
		FetchFunc: func(ctx context.Context, client *resty.Client, cnpj string) fetcher.Result {
			return result
		},
	}
}
