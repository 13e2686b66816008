package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinRequestIDMiddleware())
	engine.Use(GinCORSMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"request_id": GetRequestIDFromGin(c)})
	})
	return engine
}

func TestRequestIDGenerated(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); id == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestRequestIDPropagatedFromHeader(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); id != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q", id)
	}
}

func TestCORSPreflight(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Allow-Origin = %q", origin)
	}
}

func TestGetRequestIDFromContext(t *testing.T) {
	ctx := SetRequestID(context.Background(), "abc")
	if got := GetRequestID(ctx); got != "abc" {
		t.Errorf("GetRequestID = %q", got)
	}
	if got := GetRequestID(nil); got != "" {
		t.Errorf("GetRequestID(nil) = %q", got)
	}
}
