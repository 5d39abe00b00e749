package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/usecase"
)

func (h *Handler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req teamProfileRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.teamService.Register(ctx, usecase.RegisterTeamInput{
		UserID:      principal.UserID,
		TeamName:    req.TeamName,
		ManagerName: req.ManagerName,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		h.fail(ctx, w, "register team failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(w, http.StatusCreated, teamToDTO(team))
}

func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.teamService.Get(ctx, principal.UserID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(team))
}

func (h *Handler) UpdateMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req teamProfileRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.teamService.UpdateProfile(ctx, usecase.UpdateTeamProfileInput{
		TeamID:      principal.UserID,
		TeamName:    req.TeamName,
		ManagerName: req.ManagerName,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(team))
}

type rosterAction func(ctx context.Context, teamID, playerID string) (fantasy.Team, error)

// rosterMove runs a single-player roster edit on the caller's own team.
func (h *Handler) rosterMove(w http.ResponseWriter, r *http.Request, spanName string, action rosterAction) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	team, err := action(ctx, principal.UserID, playerID)
	if err != nil {
		h.fail(ctx, w, "roster update failed", err, "user_id", principal.UserID, "player_id", playerID, "op", spanName)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(team))
}

func (h *Handler) BuyPlayer(w http.ResponseWriter, r *http.Request) {
	h.rosterMove(w, r, "httpapi.Handler.BuyPlayer", h.rosterService.Buy)
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	h.rosterMove(w, r, "httpapi.Handler.SellPlayer", h.rosterService.Sell)
}

func (h *Handler) SetStarter(w http.ResponseWriter, r *http.Request) {
	h.rosterMove(w, r, "httpapi.Handler.SetStarter", h.rosterService.SetStarter)
}

func (h *Handler) SetBench(w http.ResponseWriter, r *http.Request) {
	h.rosterMove(w, r, "httpapi.Handler.SetBench", h.rosterService.SetBench)
}

func (h *Handler) ConfirmLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmLineup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.ConfirmLineup(ctx, principal.UserID)
	if err != nil {
		h.fail(ctx, w, "confirm lineup failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(team))
}
