package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func TestSetupServiceRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewNopLogger()
	hc := monitoring.NewHealthChecker("spyglass", "v1")
	r := SetupServiceRouter(logger, "spyglass", hc, nil)
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSetupServiceRouterHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewNopLogger()
	hc := monitoring.NewHealthChecker("spyglass", "v1")
	hc.AddCheck("ok", func() monitoring.CheckResult {
		return monitoring.CheckResult{Status: monitoring.StatusHealthy}
	})
	r := SetupServiceRouter(logger, "spyglass", hc, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var health monitoring.HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if health.Status != monitoring.StatusHealthy {
		t.Fatalf("expected healthy, got %q", health.Status)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("spyglass", "18010")
	if cfg.Port != "18010" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.ServiceName != "spyglass" {
		t.Fatalf("expected service name, got %s", cfg.ServiceName)
	}
	if cfg.ShutdownTimeout <= 0 {
		t.Fatalf("expected positive shutdown timeout")
	}
}
