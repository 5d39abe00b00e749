package httpapi

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/legastork/futsal-fantasy/internal/domain/user"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/legastork/futsal-fantasy/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Services struct {
	Settings  *usecase.SettingsService
	Players   *usecase.PlayerService
	Teams     *usecase.TeamService
	Roster    *usecase.RosterService
	Matchdays *usecase.MatchdayService
	Standings *usecase.StandingsService
	Season    *usecase.SeasonService
	Sponsors  *usecase.SponsorService
}

type Handler struct {
	settingsService  *usecase.SettingsService
	playerService    *usecase.PlayerService
	teamService      *usecase.TeamService
	rosterService    *usecase.RosterService
	matchdayService  *usecase.MatchdayService
	standingsService *usecase.StandingsService
	seasonService    *usecase.SeasonService
	sponsorService   *usecase.SponsorService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		settingsService:  services.Settings,
		playerService:    services.Players,
		teamService:      services.Teams,
		rosterService:    services.Roster,
		matchdayService:  services.Matchdays,
		standingsService: services.Standings,
		seasonService:    services.Season,
		sponsorService:   services.Sponsors,
		logger:           logger,
		validator:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeAndValidate(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeAndValidate")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "invalid JSON payload: %v", err)
	}
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "principal is missing from request context")
	}
	return principal, nil
}

// fail logs server-side failures loudly and client mistakes quietly.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
