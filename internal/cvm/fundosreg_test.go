package cvm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resty.dev/v3"

	"fundfetcher/internal/fetcher"
)

func testClient() *resty.Client {
	return fetcher.NewHTTPClient(fetcher.ClientConfig{
		UserAgent:  "test-agent",
		Accept:     "text/html",
		RetryCount: 0,
	})
}

func TestNew(t *testing.T) {
	f := New("https://cvmweb.cvm.gov.br", 15*time.Second)
	if f == nil {
		t.Fatal("New() returned nil")
	}

	if f.Source() != "CVM" {
		t.Errorf("Source() = %q, want %q", f.Source(), "CVM")
	}

	if f.Timeout() != 15*time.Second {
		t.Errorf("Timeout() = %v, want %v", f.Timeout(), 15*time.Second)
	}
}

func TestFetch_SystemAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/swb/default.asp" {
			t.Errorf("path = %q, want /swb/default.asp", r.URL.Path)
		}
		if r.URL.Query().Get("sg_sistema") != "fundosreg" {
			t.Errorf("sg_sistema = %q, want fundosreg", r.URL.Query().Get("sg_sistema"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>CVMWeb</body></html>"))
	}))
	defer server.Close()

	client := testClient()
	defer client.Close()

	f := New(server.URL, 15*time.Second)
	result := f.Fetch(context.Background(), client, "12345678000195")

	if result.Status != fetcher.StatusSystemAvailable {
		t.Fatalf("Status = %q, want %q", result.Status, fetcher.StatusSystemAvailable)
	}
	if result.Note == "" {
		t.Error("Note is empty, want a pointer at the open-data feed")
	}
	if result.Payload != nil {
		t.Errorf("Payload = %+v, want nil", result.Payload)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient()
	defer client.Close()

	f := New(server.URL, 15*time.Second)
	result := f.Fetch(context.Background(), client, "12345678000195")

	if result.Status != fetcher.StatusHTTPError {
		t.Fatalf("Status = %q, want %q", result.Status, fetcher.StatusHTTPError)
	}
	if result.HTTPStatus != 503 {
		t.Errorf("HTTPStatus = %d, want 503", result.HTTPStatus)
	}
}

func TestFetch_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient()
	defer client.Close()

	f := New(server.URL, 15*time.Second)
	result := f.Fetch(context.Background(), client, "12345678000195")

	if result.Status != fetcher.StatusConnectionError {
		t.Fatalf("Status = %q, want %q", result.Status, fetcher.StatusConnectionError)
	}
	if result.Detail == "" {
		t.Error("Detail is empty, want the transport error")
	}
}
