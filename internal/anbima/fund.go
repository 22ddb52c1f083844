package anbima

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"resty.dev/v3"

	"fundfetcher/internal/fetcher"
	"fundfetcher/internal/ratelimit"
)

// SourceName is the key this adapter's results carry in the final report.
const SourceName = "Anbima"

// hydrationSelector locates the script tag holding the page's hydration
// data: a JSON document the rendering framework inlines so client code can
// pick up server-computed state. The fund figures ride inside it.
const hydrationSelector = "script#__NEXT_DATA__"

// fieldRules maps each report field to the candidate keys tried, in order,
// on the fund object. The hydration shape is provider-owned and can change
// without notice, so every field degrades to the NotLocated sentinel
// instead of failing the extraction.
var fieldRules = []struct {
	keys   []string
	assign func(*fetcher.FundData, string)
}{
	{
		keys:   []string{"razaoSocialFundo", "razaoSocial", "nomeFantasia"},
		assign: func(d *fetcher.FundData, v string) { d.Name = v },
	},
	{
		keys:   []string{"patrimonioLiquido", "valorPatrimonioLiquido"},
		assign: func(d *fetcher.FundData, v string) { d.NetAssetValue = v },
	},
	{
		keys:   []string{"valorCota", "cota"},
		assign: func(d *fetcher.FundData, v string) { d.SharePrice = v },
	},
	{
		keys:   []string{"dataCota", "dataReferencia", "dataCompetencia"},
		assign: func(d *fetcher.FundData, v string) { d.ReferenceDate = v },
	},
}

// FundFetcher fetches fund data from the Anbima data portal
type FundFetcher struct {
	baseURL string
	timeout time.Duration
}

// New creates a new Anbima fund fetcher
func New(baseURL string, timeout time.Duration) *FundFetcher {
	return &FundFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Source returns the report key for this fetcher
func (f *FundFetcher) Source() string {
	return SourceName
}

// Timeout returns the per-fetch budget for this provider
func (f *FundFetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch loads the fund's Anbima page and extracts the figures from its
// hydration data block. Every failure mode is classified into the Result.
func (f *FundFetcher) Fetch(ctx context.Context, client *resty.Client, cnpj string) fetcher.Result {
	url := fmt.Sprintf("%s/fundos/%s", f.baseURL, cnpj)

	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIAnbima); err != nil {
		return fetcher.ConnectionError(SourceName, url, err)
	}

	resp, err := client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return fetcher.ConnectionError(SourceName, url, err)
	}

	switch {
	case resp.StatusCode() == 404:
		return fetcher.NotFound(SourceName, url)
	case !resp.IsSuccess():
		return fetcher.HTTPError(SourceName, url, resp.StatusCode())
	}

	return extract(url, resp.StatusCode(), resp.String())
}

// extract pulls the fund figures out of the page markup. Success requires
// all report fields; anything recovered short of that is a partial result
// with sentinels, and a missing or broken hydration block is an extraction
// failure — never a panic or error escaping to the coordinator.
func extract(url string, statusCode int, body string) fetcher.Result {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return fetcher.ExtractionFailure(SourceName, url, fmt.Sprintf("failed to parse page markup: %v", err))
	}

	block := doc.Find(hydrationSelector).First().Text()
	if strings.TrimSpace(block) == "" {
		return fetcher.ExtractionFailure(SourceName, url, "hydration data block not found")
	}

	// UseNumber keeps monetary values textual instead of lossy float64s.
	var page map[string]any
	dec := json.NewDecoder(strings.NewReader(block))
	dec.UseNumber()
	if err := dec.Decode(&page); err != nil {
		return fetcher.ExtractionFailure(SourceName, url, fmt.Sprintf("hydration data is not valid JSON: %v", err))
	}

	fundo, ok := dig(page, "props", "pageProps", "fundo")
	if !ok {
		return fetcher.ExtractionFailure(SourceName, url, "fund object missing from hydration data (page structure changed or no public data)")
	}

	payload := fetcher.NewFundData()
	for _, rule := range fieldRules {
		if v, found := lookup(fundo, rule.keys); found {
			rule.assign(payload, v)
		}
	}

	status := fetcher.StatusPartialSuccess
	if payload.Complete() {
		status = fetcher.StatusSuccess
	}

	return fetcher.Result{
		Source:     SourceName,
		Status:     status,
		URL:        url,
		HTTPStatus: statusCode,
		Payload:    payload,
	}
}

// dig walks nested objects one optional key at a time. A missing or
// non-object level stops the walk; it never panics on absent keys.
func dig(node map[string]any, keys ...string) (map[string]any, bool) {
	current := node
	for _, key := range keys {
		child, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// lookup tries each candidate key on the fund object and returns the first
// usable scalar value.
func lookup(node map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		raw, ok := node[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s, true
			}
		case json.Number:
			return v.String(), true
		}
	}
	return "", false
}
