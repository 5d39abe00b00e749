package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/standings", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	if got := resolveClientIP(req); got != "10.0.0.7" {
		t.Fatalf("expected socket address, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := resolveClientIP(req); got != "203.0.113.9" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}

	req.Header.Set("Fly-Client-IP", "not-an-ip")
	if got := resolveClientIP(req); got != "203.0.113.9" {
		t.Fatalf("expected invalid header to be skipped, got %q", got)
	}
}
