package observability

import (
	"testing"

	"github.com/shopspring/decimal"
	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", []any{"path", "/v1/standings"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("matchday settled", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-access log to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"team_id", "u1", "attempt", 2, "points", decimal.RequireFromString("10.5"), "payload"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team_id" || attrs[0].Value.AsString() != "u1" {
		t.Fatalf("unexpected team_id attribute")
	}
	if attrs[1].Key != "attempt" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected attempt attribute")
	}
	if attrs[2].Key != "points" || attrs[2].Value.AsFloat64() != 10.5 {
		t.Fatalf("unexpected points attribute")
	}
	if attrs[3].Key != "payload" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelLogValue_Collections(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"goals": 2,
		"red":   false,
	}, 0)
	if v.Kind() != otellog.KindMap || len(v.AsMap()) != 2 {
		t.Fatalf("expected map value with 2 items, got %s", v.Kind())
	}

	ids := toOTelLogValue([]string{"1", "3"}, 0)
	if ids.Kind() != otellog.KindSlice || len(ids.AsSlice()) != 2 {
		t.Fatalf("expected slice value with 2 items, got %s", ids.Kind())
	}

	var missing *int
	if got := toOTelLogValue(missing, 0); got.Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil pointer, got %s", got.Kind())
	}
}
