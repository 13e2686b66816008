package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testCSV = "Feature,Feature Description,Module,Point of Contact,Requested Clients\n" +
	"Blackout Dates,Block leave on key dates,Leave,J. Smith,\"Acme, Globex; Initech\"\n" +
	"Shift Swap,,Time,,Umbrella\n" +
	",missing name,Leave,,Ignored\n"

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

const seedJSON = `[
  {"name": "Seed Feature", "module": "Leave", "description": "from seed", "requested_clients": ["Acme"]}
]`

func TestFetcher_FetchRows_FromSheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "text/csv" {
			t.Errorf("Accept header = %q, want text/csv", got)
		}
		w.Write([]byte(testCSV))
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: writeSeed(t, seedJSON)})
	rows, err := fetcher.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows() returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 valid rows (invalid row dropped), got %d: %v", len(rows), rows)
	}
	if rows[0].Name != "Blackout Dates" || len(rows[0].RequestedClients) != 3 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

func TestFetcher_FetchRows_StripsBOM(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\xef\xbb\xbf" + testCSV))
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: writeSeed(t, seedJSON)})
	rows, err := fetcher.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows() returned error: %v", err)
	}
	if rows[0].Name != "Blackout Dates" {
		t.Errorf("BOM not stripped, first row: %+v", rows[0])
	}
}

func TestFetcher_FetchRows_HTMLBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n  <!DOCTYPE html><html><body>Sign in</body></html>"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: writeSeed(t, seedJSON)})
	rows, err := fetcher.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows() returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Seed Feature" {
		t.Fatalf("expected seed fallback, got %v", rows)
	}
}

func TestFetcher_FetchRows_HTTPErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: writeSeed(t, seedJSON)})
	rows, err := fetcher.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows() returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Seed Feature" {
		t.Fatalf("expected seed fallback on HTTP 403, got %v", rows)
	}
}

func TestFetcher_FetchRows_ZeroValidRowsFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Заголовок есть, но все строки без name/module
		w.Write([]byte("Feature,Module\n,\n ,  \n"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: writeSeed(t, seedJSON)})
	rows, err := fetcher.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows() returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Seed Feature" {
		t.Fatalf("expected seed fallback on zero valid rows, got %v", rows)
	}
}

func TestFetcher_FetchRows_BothUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: filepath.Join(t.TempDir(), "missing.json")})
	if _, err := fetcher.FetchRows(context.Background()); err == nil {
		t.Fatal("expected error when sheet and seed are both unavailable")
	}

	fetcher = NewFetcher(FetcherConfig{URL: srv.URL, SeedPath: writeSeed(t, "[]")})
	if _, err := fetcher.FetchRows(context.Background()); err == nil {
		t.Fatal("expected error when fallback seed is empty")
	}
}
