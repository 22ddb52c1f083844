package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Failure-result constructors. Adapter failures become data, not control
// flow: each constructor builds the one Result shape for its classification
// so adapters never hand a half-filled case to the coordinator.

// NotFound builds the result for a provider that confirmed the CNPJ does
// not exist.
func NotFound(source, url string) Result {
	return Result{
		Source:     source,
		Status:     StatusNotFound,
		URL:        url,
		HTTPStatus: 404,
		Detail:     "provider reports no fund registered under this CNPJ",
	}
}

// HTTPError builds the result for a non-success, non-404 provider status.
func HTTPError(source, url string, statusCode int) Result {
	return Result{
		Source:     source,
		Status:     StatusHTTPError,
		URL:        url,
		HTTPStatus: statusCode,
		Detail:     fmt.Sprintf("provider returned HTTP %d", statusCode),
	}
}

// ConnectionError builds the result for a transport-level failure.
// Timeouts, DNS failures, refusals and TLS errors all land here; the
// detail distinguishes them for the presentation layer.
func ConnectionError(source, url string, cause error) Result {
	detail := "connection failed"
	if cause != nil {
		detail = cause.Error()
		var netErr net.Error
		switch {
		case errors.Is(cause, context.DeadlineExceeded):
			detail = fmt.Sprintf("request timed out: %v", cause)
		case errors.As(cause, &netErr) && netErr.Timeout():
			detail = fmt.Sprintf("request timed out: %v", cause)
		}
	}
	return Result{
		Source: source,
		Status: StatusConnectionError,
		URL:    url,
		Detail: detail,
	}
}

// ExtractionFailure builds the result for a response that arrived but did
// not contain the expected structured data.
func ExtractionFailure(source, url, reason string) Result {
	return Result{
		Source: source,
		Status: StatusExtractionFailure,
		URL:    url,
		Detail: reason,
	}
}
