package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
	"github.com/riskibarqy/epl-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/epl-stats/internal/domain/playerstats"
	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

const welcomeMessage = "Welcome to the EPL API"

type PlayerStatsSearcher interface {
	Search(ctx context.Context, name string) ([]playerstats.PlayerStats, error)
}

type LeagueTableReader interface {
	Table(ctx context.Context) ([]leaguestanding.TableRow, error)
}

type MatchReader interface {
	Fixtures(ctx context.Context) ([]fixture.Fixture, error)
	Results(ctx context.Context) ([]fixture.Result, error)
}

type CacheStatsReader interface {
	Stats() cache.Stats
}

type Handler struct {
	playerStats PlayerStatsSearcher
	table       LeagueTableReader
	matches     MatchReader
	cacheStats  CacheStatsReader
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(
	playerStats PlayerStatsSearcher,
	table LeagueTableReader,
	matches MatchReader,
	cacheStats CacheStatsReader,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerStats: playerStats,
		table:       table,
		matches:     matches,
		cacheStats:  cacheStats,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Welcome")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type playerStatsRequest struct {
	Name string `validate:"required,max=100"`
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	req := playerStatsRequest{Name: r.PathValue("name")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerStats.Search(ctx, req.Name)
	if err != nil {
		h.logServiceError(ctx, "search player stats failed", err, "name", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueTable")
	defer span.End()

	rows, err := h.table.Table(ctx)
	if err != nil {
		h.logServiceError(ctx, "get league table failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

type fixturesDTO struct {
	Fixtures []fixture.Fixture `json:"fixtures"`
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	items, err := h.matches.Fixtures(ctx)
	if err != nil {
		h.logServiceError(ctx, "list fixtures failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesDTO{Fixtures: items})
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	items, err := h.matches.Results(ctx)
	if err != nil {
		h.logServiceError(ctx, "list results failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCacheStats")
	defer span.End()

	stats := cache.Stats{}
	if h.cacheStats != nil {
		stats = h.cacheStats.Stats()
	}
	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logServiceError logs client errors at warn and everything else at error.
func (h *Handler) logServiceError(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus < http.StatusInternalServerError {
		h.logger.WarnContext(ctx, msg, args...)
		return
	}
	h.logger.ErrorContext(ctx, msg, args...)
}
