package httpapi

import (
	"net/http"
	"strings"

	"github.com/legastork/futsal-fantasy/internal/usecase"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettings")
	defer span.End()

	item, err := h.settingsService.Get(ctx)
	if err != nil {
		h.fail(ctx, w, "get settings failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, settingsToDTO(item))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSettings")
	defer span.End()

	var req updateSettingsRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.settingsService.Update(ctx, usecase.UpdateSettingsInput{
		LeagueName:      req.LeagueName,
		IsMarketOpen:    req.IsMarketOpen,
		IsLineupLocked:  req.IsLineupLocked,
		CurrentMatchday: req.CurrentMatchday,
		LiveStreamURL:   req.LiveStreamURL,
		TickerText:      req.TickerText,
		MarketDeadline:  req.MarketDeadline,
	})
	if err != nil {
		h.fail(ctx, w, "update settings failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, settingsToDTO(item))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.standingsService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list standings failed", err)
		return
	}

	items := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(row))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	rows, err := h.standingsService.TeamHistory(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team history failed", err, "team_id", teamID)
		return
	}

	items := make([]teamHistoryDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, teamHistoryToDTO(row))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) ResetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetSeason")
	defer span.End()

	if err := h.seasonService.ResetAllStandings(ctx); err != nil {
		h.fail(ctx, w, "reset season failed", err)
		return
	}

	writeNoContent(w)
}
