package cvm

import (
	"context"
	"strings"
	"time"

	"resty.dev/v3"

	"fundfetcher/internal/fetcher"
	"fundfetcher/internal/ratelimit"
)

// SourceName is the key this adapter's results carry in the final report.
const SourceName = "CVM"

// fundosregPath is the entry page of CVM's legacy fund registration system.
const fundosregPath = "/swb/default.asp?sg_sistema=fundosreg"

const availableNote = "legacy fundosreg system is up; it blocks direct value scraping — the CVM open-data bulk feed is the supported path to actual figures"

// SystemFetcher checks availability of CVM's legacy fundosreg system
type SystemFetcher struct {
	baseURL string
	timeout time.Duration
}

// New creates a new CVM system fetcher
func New(baseURL string, timeout time.Duration) *SystemFetcher {
	return &SystemFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Source returns the report key for this fetcher
func (f *SystemFetcher) Source() string {
	return SourceName
}

// Timeout returns the per-fetch budget for this provider
func (f *SystemFetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch probes the legacy system. 200 means available (no figures are
// scrapable from it); anything else is a plain HTTP or transport failure.
func (f *SystemFetcher) Fetch(ctx context.Context, client *resty.Client, cnpj string) fetcher.Result {
	url := f.baseURL + fundosregPath

	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APICVM); err != nil {
		return fetcher.ConnectionError(SourceName, url, err)
	}

	resp, err := client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return fetcher.ConnectionError(SourceName, url, err)
	}

	if resp.StatusCode() != 200 {
		return fetcher.HTTPError(SourceName, url, resp.StatusCode())
	}

	return fetcher.Result{
		Source:     SourceName,
		Status:     fetcher.StatusSystemAvailable,
		URL:        url,
		HTTPStatus: 200,
		Note:       availableNote,
	}
}
