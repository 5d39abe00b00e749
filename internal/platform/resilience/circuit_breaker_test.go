package resilience

import (
	"errors"
	"testing"
	"time"
)

var errDown = errors.New("identity service down")

func fail() error { return errDown }
func ok() error   { return nil }

func TestCircuitBreaker_Transitions(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})
	now := time.Date(2026, 3, 7, 20, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Execute(ok, nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Execute(ok, nil); err != nil {
		t.Fatalf("expected trial to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful trial, got %s", state)
	}
}

func TestCircuitBreaker_FailedTrialReopens(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second})
	now := time.Date(2026, 3, 7, 20, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	_ = b.Execute(fail, nil)
	now = now.Add(2 * time.Second)
	if err := b.Execute(fail, nil); !errors.Is(err, errDown) {
		t.Fatalf("expected trial to run and fail, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected reopened circuit, got %s", state)
	}
}

func TestCircuitBreaker_SkipsUncountedErrors(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	errRejected := errors.New("token rejected")
	countable := func(err error) bool { return !errors.Is(err, errRejected) }

	if err := b.Execute(func() error { return errRejected }, countable); !errors.Is(err, errRejected) {
		t.Fatalf("expected rejected error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after uncounted error, got %s", state)
	}

	_ = b.Execute(fail, countable)
	if err := b.Execute(ok, countable); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_DisabledIsPassThrough(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}

	calls := 0
	for range 10 {
		_ = b.Execute(func() error { calls++; return errDown }, nil)
	}
	if calls != 10 {
		t.Fatalf("expected every call to run, got %d", calls)
	}
}
