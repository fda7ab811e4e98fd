package monitoring

import (
	"fmt"
	"testing"
)

func TestHealthChecker_Basic(t *testing.T) {
	hc := NewHealthChecker("spyglass", "v1")
	hc.AddCheck("ok", func() CheckResult { return CheckResult{Status: StatusHealthy} })
	status := hc.CheckHealth()
	if status.Status != StatusHealthy {
		t.Fatalf("expected healthy")
	}
	if status.Service != "spyglass" {
		t.Fatalf("expected service name, got %q", status.Service)
	}
}

func TestHealthChecker_UnhealthyCheckWins(t *testing.T) {
	hc := NewHealthChecker("spyglass", "v1")
	hc.AddCheck("ok", func() CheckResult { return CheckResult{Status: StatusHealthy} })
	hc.AddCheck("broken", func() CheckResult { return CheckResult{Status: StatusUnhealthy} })
	if status := hc.CheckHealth(); status.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %q", status.Status)
	}
}

func TestComponentHealthCheck(t *testing.T) {
	res := ComponentHealthCheck("lexicon", func() error { return nil })()
	if res.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %q", res.Status)
	}

	res = ComponentHealthCheck("lexicon", func() error { return fmt.Errorf("boom") })()
	if res.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %q", res.Status)
	}

	res = ComponentHealthCheck("lexicon", nil)()
	if res.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy for nil probe, got %q", res.Status)
	}
}

func TestConfigurationHealthCheck(t *testing.T) {
	res := ConfigurationHealthCheck(map[string]string{"PORT": "18010"})()
	if res.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %q", res.Status)
	}

	res = ConfigurationHealthCheck(map[string]string{"PORT": ""})()
	if res.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy for missing config, got %q", res.Status)
	}
}
