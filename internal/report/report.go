package report

import (
	"time"

	"fundfetcher/internal/fetcher"
)

// TimeFormat is the textual layout of the batch timestamp.
const TimeFormat = "2006-01-02 15:04:05"

// Report is the unified outcome of one search: every known source appears
// exactly once in Results, keyed by source name, whatever order the fetches
// completed in and however many of them failed.
type Report struct {
	Identifier string                    `json:"identifier"`
	Timestamp  string                    `json:"timestamp"`
	Results    map[string]fetcher.Result `json:"results"`
}

// Merge builds the keyed report from the ordered per-source results. The
// identifier is kept exactly as the caller supplied it, pre-normalization.
func Merge(identifier string, results []fetcher.Result) *Report {
	keyed := make(map[string]fetcher.Result, len(results))
	for _, r := range results {
		keyed[r.Source] = r
	}

	return &Report{
		Identifier: identifier,
		Timestamp:  time.Now().Format(TimeFormat),
		Results:    keyed,
	}
}
