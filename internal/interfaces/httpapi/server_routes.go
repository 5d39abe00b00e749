package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/settings", handler.GetSettings)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/sponsors", handler.ListSponsors)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/teams/{teamID}/history", handler.GetTeamHistory)
	mux.HandleFunc("GET /v1/matchdays", handler.ListMatchdays)
	mux.HandleFunc("GET /v1/matchdays/{matchdayID}/scores", handler.ListMatchdayScores)
}

func registerManagerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	auth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, h)
	}

	mux.Handle("POST /v1/teams", auth(handler.RegisterTeam))
	mux.Handle("GET /v1/teams/me", auth(handler.GetMyTeam))
	mux.Handle("PATCH /v1/teams/me", auth(handler.UpdateMyTeam))
	mux.Handle("POST /v1/teams/me/players/{playerID}", auth(handler.BuyPlayer))
	mux.Handle("DELETE /v1/teams/me/players/{playerID}", auth(handler.SellPlayer))
	mux.Handle("POST /v1/teams/me/lineup/confirm", auth(handler.ConfirmLineup))
	mux.Handle("POST /v1/teams/me/lineup/{playerID}", auth(handler.SetStarter))
	mux.Handle("DELETE /v1/teams/me/lineup/{playerID}", auth(handler.SetBench))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, adminRole string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireAdmin(adminRole, h))
	}

	mux.Handle("PUT /v1/admin/settings", admin(handler.UpdateSettings))
	mux.Handle("PUT /v1/admin/players", admin(handler.UpsertPlayer))
	mux.Handle("DELETE /v1/admin/players/{playerID}", admin(handler.DeletePlayer))
	mux.Handle("PUT /v1/admin/sponsors", admin(handler.UpsertSponsor))
	mux.Handle("DELETE /v1/admin/sponsors/{sponsorID}", admin(handler.DeleteSponsor))
	mux.Handle("POST /v1/admin/matchdays", admin(handler.CreateMatchday))
	mux.Handle("PUT /v1/admin/matchdays/{matchdayID}/votes", admin(handler.RecordVotes))
	mux.Handle("POST /v1/admin/matchdays/{matchdayID}/settle", admin(handler.SettleMatchday))
	mux.Handle("POST /v1/admin/matchdays/{matchdayID}/reopen", admin(handler.ReopenMatchday))
	mux.Handle("DELETE /v1/admin/matchdays/{matchdayID}", admin(handler.DeleteMatchday))
	mux.Handle("POST /v1/admin/season/reset", admin(handler.ResetSeason))
}
