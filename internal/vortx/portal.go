package vortx

import (
	"context"
	"strings"
	"time"

	"resty.dev/v3"

	"fundfetcher/internal/fetcher"
	"fundfetcher/internal/ratelimit"
)

// SourceName is the key this adapter's results carry in the final report.
const SourceName = "Vórtx"

// portalPath is the public fund listing page. The figures behind it are
// rendered client-side from authenticated internal calls, so a plain fetch
// can only confirm the portal is reachable.
const portalPath = "/investidor/fundos-de-investimento"

const protectedNote = "portal reachable; fund figures are rendered client-side from protected internal calls and cannot be read from a plain page fetch"

// PortalFetcher checks reachability of the Vórtx investor portal
type PortalFetcher struct {
	baseURL string
	timeout time.Duration
}

// New creates a new Vórtx portal fetcher
func New(baseURL string, timeout time.Duration) *PortalFetcher {
	return &PortalFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Source returns the report key for this fetcher
func (f *PortalFetcher) Source() string {
	return SourceName
}

// Timeout returns the per-fetch budget for this provider
func (f *PortalFetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch confirms the portal answers at all. Any response, whatever its
// status, classifies as data-protected; only transport failures differ.
func (f *PortalFetcher) Fetch(ctx context.Context, client *resty.Client, cnpj string) fetcher.Result {
	url := f.baseURL + portalPath

	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIVortx); err != nil {
		return fetcher.ConnectionError(SourceName, url, err)
	}

	resp, err := client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return fetcher.ConnectionError(SourceName, url, err)
	}

	return fetcher.Result{
		Source:     SourceName,
		Status:     fetcher.StatusDataProtected,
		URL:        url,
		HTTPStatus: resp.StatusCode(),
		Note:       protectedNote,
	}
}
