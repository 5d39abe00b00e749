package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/user"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/legastork/futsal-fantasy/internal/usecase"
)

type staticVerifier map[string]user.Principal

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	principal, ok := v[token]
	if !ok {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "unknown token")
	}
	return principal, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	rules := fantasy.DefaultRules()

	players := memory.NewPlayerRepository(memory.SeedPlayers())
	teams := memory.NewTeamRepository()
	matchdays := memory.NewMatchdayRepository()
	settingsRepo := memory.NewSettingsRepository()
	ledgerRepo := memory.NewLedgerRepository(teams)

	settlement := usecase.NewSettlementService(matchdays, teams, ledgerRepo, settingsRepo, usecase.DefaultSettlementConfig(), logger)
	handler := NewHandler(Services{
		Settings:  usecase.NewSettingsService(settingsRepo, logger),
		Players:   usecase.NewPlayerService(players, teams, idgen.NewSequenceGenerator("p-new"), logger),
		Teams:     usecase.NewTeamService(teams, rules, logger),
		Roster:    usecase.NewRosterService(teams, players, settingsRepo, matchdays, ledgerRepo, rules, logger),
		Matchdays: usecase.NewMatchdayService(matchdays, ledgerRepo, settlement, idgen.NewSequenceGenerator("md-1", "md-2"), logger),
		Standings: usecase.NewStandingsService(teams, ledgerRepo, logger),
		Season:    usecase.NewSeasonService(teams, ledgerRepo, matchdays, settingsRepo, rules, logger),
		Sponsors:  usecase.NewSponsorService(memory.NewSponsorRepository(), idgen.NewSequenceGenerator("sp-1"), logger),
	}, logger)

	verifier := staticVerifier{
		"manager-token": {UserID: "u1", Email: "u1@example.com"},
		"admin-token":   {UserID: "boss", Email: "boss@example.com", Roles: []string{"admin"}},
	}
	return NewRouter(handler, verifier, logger, RouterConfig{AdminRole: "admin"})
}

func call(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return envelope.Data
}

func decodeErrorReason(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error == nil || len(body.Error.Errors) == 0 {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
	return body.Error.Errors[0].Reason
}

func TestRouter_PublicSettings(t *testing.T) {
	router := newTestRouter(t)

	rec := call(t, router, http.MethodGet, "/v1/settings", "", "")
	expectStatus(t, rec, http.StatusOK)

	got := decodeData[settingsDTO](t, rec)
	if got.LeagueName != "Lega Stork" || !got.IsMarketOpen || got.CurrentMatchday != 1 {
		t.Fatalf("unexpected default settings: %+v", got)
	}
}

func TestRouter_ManagerRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := call(t, router, http.MethodPost, "/v1/teams", "", `{"team_name":"Stork FC","manager_name":"Lele"}`)
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = call(t, router, http.MethodGet, "/v1/teams/me", "forged", "")
	expectStatus(t, rec, http.StatusUnauthorized)
}

func TestRouter_AdminRoutesRequireRole(t *testing.T) {
	router := newTestRouter(t)

	rec := call(t, router, http.MethodPost, "/v1/admin/matchdays", "manager-token", `{"number":1}`)
	expectStatus(t, rec, http.StatusForbidden)
	if reason := decodeErrorReason(t, rec); reason != "forbidden" {
		t.Fatalf("expected forbidden reason, got %s", reason)
	}

	rec = call(t, router, http.MethodPost, "/v1/admin/matchdays", "admin-token", `{"number":1}`)
	expectStatus(t, rec, http.StatusCreated)

	rec = call(t, router, http.MethodPost, "/v1/admin/matchdays", "admin-token", `{"number":1}`)
	expectStatus(t, rec, http.StatusConflict)
}

func TestRouter_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec := call(t, router, http.MethodPost, "/v1/teams", "manager-token", `{"team_name":"Stork FC","manager_name":"Lele","budget":999}`)
	expectStatus(t, rec, http.StatusBadRequest)
	if reason := decodeErrorReason(t, rec); reason != "invalidInput" {
		t.Fatalf("expected invalidInput reason, got %s", reason)
	}
}

func TestRouter_ConfirmIncompleteLineup(t *testing.T) {
	router := newTestRouter(t)

	expectStatus(t, call(t, router, http.MethodPost, "/v1/teams", "manager-token", `{"team_name":"Stork FC","manager_name":"Lele"}`), http.StatusCreated)
	expectStatus(t, call(t, router, http.MethodPost, "/v1/teams/me/players/3", "manager-token", ""), http.StatusOK)
	expectStatus(t, call(t, router, http.MethodPost, "/v1/teams/me/lineup/3", "manager-token", ""), http.StatusOK)

	rec := call(t, router, http.MethodPost, "/v1/teams/me/lineup/confirm", "manager-token", "")
	expectStatus(t, rec, http.StatusBadRequest)
	if reason := decodeErrorReason(t, rec); reason != "invalidRoster" {
		t.Fatalf("expected invalidRoster reason, got %s", reason)
	}
}

func TestRouter_MatchdayLifecycle(t *testing.T) {
	router := newTestRouter(t)
	const manager = "manager-token"
	const admin = "admin-token"

	rec := call(t, router, http.MethodPost, "/v1/teams", manager, `{"team_name":"Stork FC","manager_name":"Lele"}`)
	expectStatus(t, rec, http.StatusCreated)
	if team := decodeData[teamDTO](t, rec); team.CreditsLeft != 250 {
		t.Fatalf("expected initial budget 250, got %d", team.CreditsLeft)
	}

	for _, playerID := range []string{"3", "1", "2", "4", "5"} {
		expectStatus(t, call(t, router, http.MethodPost, "/v1/teams/me/players/"+playerID, manager, ""), http.StatusOK)
		expectStatus(t, call(t, router, http.MethodPost, "/v1/teams/me/lineup/"+playerID, manager, ""), http.StatusOK)
	}

	rec = call(t, router, http.MethodPost, "/v1/teams/me/lineup/confirm", manager, "")
	expectStatus(t, rec, http.StatusOK)
	team := decodeData[teamDTO](t, rec)
	if !team.IsLineupConfirmed || team.CreditsLeft != 92 || len(team.LineupIDs) != 5 {
		t.Fatalf("unexpected team after confirm: %+v", team)
	}

	rec = call(t, router, http.MethodPost, "/v1/admin/matchdays", admin, `{"number":1}`)
	expectStatus(t, rec, http.StatusCreated)
	md := decodeData[matchdayDTO](t, rec)
	if md.ID != "md-1" || md.Status != "open" {
		t.Fatalf("unexpected matchday: %+v", md)
	}

	rec = call(t, router, http.MethodPut, "/v1/admin/matchdays/md-1/votes", admin, `{"votes":{"1":{"vote":6,"goals":1,"assists":1}}}`)
	expectStatus(t, rec, http.StatusOK)

	rec = call(t, router, http.MethodPost, "/v1/admin/matchdays/md-1/settle", admin, "")
	expectStatus(t, rec, http.StatusOK)
	result := decodeData[settlementDTO](t, rec)
	if result.AppliedCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected settlement: %+v", result)
	}

	rec = call(t, router, http.MethodGet, "/v1/standings", "", "")
	expectStatus(t, rec, http.StatusOK)
	standings := decodeData[[]standingDTO](t, rec)
	if len(standings) != 1 || standings[0].TeamID != "u1" || standings[0].TotalPoints != 10 || standings[0].Rank != 1 {
		t.Fatalf("unexpected standings: %+v", standings)
	}

	rec = call(t, router, http.MethodGet, "/v1/teams/u1/history", "", "")
	expectStatus(t, rec, http.StatusOK)
	history := decodeData[[]teamHistoryDTO](t, rec)
	if len(history) != 1 || !history[0].Settled || history[0].PointsEarned != 10 {
		t.Fatalf("unexpected history: %+v", history)
	}

	// Votes are frozen once the matchday is calculated.
	rec = call(t, router, http.MethodPut, "/v1/admin/matchdays/md-1/votes", admin, `{"votes":{"2":{"vote":7}}}`)
	expectStatus(t, rec, http.StatusConflict)

	expectStatus(t, call(t, router, http.MethodDelete, "/v1/admin/matchdays/md-1", admin, ""), http.StatusNoContent)

	rec = call(t, router, http.MethodGet, "/v1/standings", "", "")
	expectStatus(t, rec, http.StatusOK)
	standings = decodeData[[]standingDTO](t, rec)
	if len(standings) != 1 || standings[0].TotalPoints != 0 {
		t.Fatalf("expected points reverted after delete, got %+v", standings)
	}
}

func TestRouter_SponsorAdminLifecycle(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Birrificio Stork","type":"Main","logo_url":"https://cdn.example.com/stork.png","link_url":"https://stork.example.com"}`
	expectStatus(t, call(t, router, http.MethodPut, "/v1/admin/sponsors", "manager-token", body), http.StatusForbidden)

	rec := call(t, router, http.MethodPut, "/v1/admin/sponsors", "admin-token", body)
	expectStatus(t, rec, http.StatusOK)
	created := decodeData[sponsorDTO](t, rec)
	if created.ID != "sp-1" || created.Name != "Birrificio Stork" {
		t.Fatalf("unexpected sponsor: %+v", created)
	}

	rec = call(t, router, http.MethodPut, "/v1/admin/sponsors", "admin-token", `{"name":"Bad Logo","logo_url":"not a url"}`)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = call(t, router, http.MethodGet, "/v1/sponsors", "", "")
	expectStatus(t, rec, http.StatusOK)
	if listed := decodeData[[]sponsorDTO](t, rec); len(listed) != 1 || listed[0].LogoURL != "https://cdn.example.com/stork.png" {
		t.Fatalf("unexpected sponsor list: %+v", listed)
	}

	expectStatus(t, call(t, router, http.MethodDelete, "/v1/admin/sponsors/sp-1", "admin-token", ""), http.StatusNoContent)
	expectStatus(t, call(t, router, http.MethodDelete, "/v1/admin/sponsors/sp-1", "admin-token", ""), http.StatusNotFound)

	rec = call(t, router, http.MethodGet, "/v1/sponsors", "", "")
	expectStatus(t, rec, http.StatusOK)
	if listed := decodeData[[]sponsorDTO](t, rec); len(listed) != 0 {
		t.Fatalf("expected empty sponsor list, got %+v", listed)
	}
}
