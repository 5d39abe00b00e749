package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	for path, want := range map[string]bool{
		"/healthz":      false,
		" /readyz ":     false,
		"/LIVEZ":        false,
		"/v1/standings": true,
		"/":             true,
	} {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}
