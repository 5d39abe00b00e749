package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused on 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error == nil || body.Error.Message != "internal server error" {
		t.Fatalf("expected generic message, got %+v", body.Error)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "roster rule wins over invalid input",
			err:        errors.Mark(fantasy.ErrExceededBudget, usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidRoster",
		},
		{
			name:       "lineup shape",
			err:        errors.Wrap(fantasy.ErrLineupShape, "confirm"),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidRoster",
		},
		{
			name:       "squad size",
			err:        fantasy.ErrInvalidSquadSize,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidRoster",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: matchday md-9", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "forbidden",
			err:        errors.Wrap(usecase.ErrForbidden, "role admin required"),
			wantStatus: http.StatusForbidden,
			wantReason: "forbidden",
		},
		{
			name:       "marked invalid state",
			err:        errors.Mark(errors.New("roster changed concurrently"), usecase.ErrInvalidState),
			wantStatus: http.StatusConflict,
			wantReason: "invalidState",
		},
		{
			name:       "partial settlement",
			err:        &usecase.PartialSettlementError{MatchdayNumber: 1, FailedTeamIDs: []string{"u1", "u2"}, Cause: errors.New("ledger timeout")},
			wantStatus: http.StatusConflict,
			wantReason: "partialSettlement",
		},
		{
			name:       "dependency unavailable",
			err:        errors.Mark(errors.New("anubis timeout"), usecase.ErrDependencyUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantReason: "dependencyUnavailable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.wantStatus || got.Reason != tc.wantReason {
				t.Fatalf("expected %d/%s, got %d/%s", tc.wantStatus, tc.wantReason, got.HTTPStatus, got.Reason)
			}
		})
	}
}
