package httpapi

import (
	"net/http"
	"strings"

	"github.com/legastork/futsal-fantasy/internal/usecase"
)

func (h *Handler) ListSponsors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSponsors")
	defer span.End()

	sponsors, err := h.sponsorService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list sponsors failed", err)
		return
	}

	items := make([]sponsorDTO, 0, len(sponsors))
	for _, s := range sponsors {
		items = append(items, sponsorToDTO(s))
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) UpsertSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertSponsor")
	defer span.End()

	var req upsertSponsorRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.sponsorService.Upsert(ctx, usecase.UpsertSponsorInput{
		ID:      req.ID,
		Name:    req.Name,
		Type:    req.Type,
		LogoURL: req.LogoURL,
		LinkURL: req.LinkURL,
	})
	if err != nil {
		h.fail(ctx, w, "upsert sponsor failed", err, "sponsor_id", req.ID)
		return
	}

	writeSuccess(w, http.StatusOK, sponsorToDTO(item))
}

func (h *Handler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSponsor")
	defer span.End()

	sponsorID := strings.TrimSpace(r.PathValue("sponsorID"))
	if err := h.sponsorService.Delete(ctx, sponsorID); err != nil {
		h.fail(ctx, w, "delete sponsor failed", err, "sponsor_id", sponsorID)
		return
	}

	writeNoContent(w)
}
