package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newFakeUpstream(t *testing.T, content string, status int) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Errorf("expected json_object response format, got %+v", req.ResponseFormat)
		}

		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{BaseURL: baseURL, APIKey: "test-key"})
}

func TestClient_CompleteJSON(t *testing.T) {
	srv, _ := newFakeUpstream(t, `{"answer":42}`, http.StatusOK)

	content, err := newTestClient(srv.URL).CompleteJSON(context.Background(), "req-1", "prompt")
	if err != nil {
		t.Fatalf("CompleteJSON() returned error: %v", err)
	}
	if content != `{"answer":42}` {
		t.Errorf("content = %q", content)
	}
}

func TestClient_CompleteJSON_UpstreamErrorNoRetry(t *testing.T) {
	srv, calls := newFakeUpstream(t, "", http.StatusInternalServerError)

	_, err := newTestClient(srv.URL).CompleteJSON(context.Background(), "req-1", "prompt")
	if err == nil {
		t.Fatal("expected error on upstream 500")
	}
	// Единственная неудачная попытка, без повторов
	if got := calls.Load(); got != 1 {
		t.Errorf("upstream called %d times, want exactly 1", got)
	}
}

func TestClient_Enabled(t *testing.T) {
	if NewClient(ClientConfig{}).Enabled() {
		t.Error("client without API key must be disabled")
	}
	if !NewClient(ClientConfig{APIKey: "k"}).Enabled() {
		t.Error("client with API key must be enabled")
	}
	var nilClient *Client
	if nilClient.Enabled() {
		t.Error("nil client must be disabled")
	}
}
