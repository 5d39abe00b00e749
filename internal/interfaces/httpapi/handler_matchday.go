package httpapi

import (
	"net/http"
	"strings"

	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	"github.com/legastork/futsal-fantasy/internal/usecase"
)

func (h *Handler) ListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdays")
	defer span.End()

	items, err := h.matchdayService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list matchdays failed", err)
		return
	}

	out := make([]matchdayDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchdayToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) ListMatchdayScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdayScores")
	defer span.End()

	matchdayID := strings.TrimSpace(r.PathValue("matchdayID"))
	scores, err := h.matchdayService.PlayerScores(ctx, matchdayID)
	if err != nil {
		h.fail(ctx, w, "list matchday scores failed", err, "matchday_id", matchdayID)
		return
	}

	out := make([]playerScoreDTO, 0, len(scores))
	for _, score := range scores {
		out = append(out, playerScoreDTO{
			PlayerID: score.PlayerID,
			Stats:    statsToDTO(score.Stats),
			Points:   score.Points.InexactFloat64(),
		})
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) CreateMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchday")
	defer span.End()

	var req createMatchdayRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchdayService.Create(ctx, req.Number)
	if err != nil {
		h.fail(ctx, w, "create matchday failed", err, "matchday", req.Number)
		return
	}

	writeSuccess(w, http.StatusCreated, matchdayToDTO(item))
}

func (h *Handler) RecordVotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordVotes")
	defer span.End()

	matchdayID := strings.TrimSpace(r.PathValue("matchdayID"))
	var req recordVotesRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	votes := make(map[string]scoring.PlayerMatchStats, len(req.Votes))
	for playerID, vote := range req.Votes {
		votes[strings.TrimSpace(playerID)] = vote.toStats()
	}

	item, err := h.matchdayService.RecordVotes(ctx, usecase.RecordVotesInput{
		MatchdayID: matchdayID,
		Votes:      votes,
		Replace:    req.Replace,
	})
	if err != nil {
		h.fail(ctx, w, "record votes failed", err, "matchday_id", matchdayID)
		return
	}

	writeSuccess(w, http.StatusOK, matchdayToDTO(item))
}

func (h *Handler) SettleMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SettleMatchday")
	defer span.End()

	matchdayID := strings.TrimSpace(r.PathValue("matchdayID"))
	result, err := h.matchdayService.Settle(ctx, matchdayID)
	if err != nil {
		h.fail(ctx, w, "settle matchday failed", err,
			"matchday_id", matchdayID,
			"applied", result.AppliedCount,
			"failed", result.FailedCount,
		)
		return
	}

	writeSuccess(w, http.StatusOK, settlementToDTO(result))
}

func (h *Handler) ReopenMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReopenMatchday")
	defer span.End()

	matchdayID := strings.TrimSpace(r.PathValue("matchdayID"))
	item, err := h.matchdayService.Reopen(ctx, matchdayID)
	if err != nil {
		h.fail(ctx, w, "reopen matchday failed", err, "matchday_id", matchdayID)
		return
	}

	writeSuccess(w, http.StatusOK, matchdayToDTO(item))
}

func (h *Handler) DeleteMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchday")
	defer span.End()

	matchdayID := strings.TrimSpace(r.PathValue("matchdayID"))
	if err := h.matchdayService.Delete(ctx, matchdayID); err != nil {
		h.fail(ctx, w, "delete matchday failed", err, "matchday_id", matchdayID)
		return
	}

	writeNoContent(w)
}
