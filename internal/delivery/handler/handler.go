package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/fyzanshaik/timer-game/internal/application/command"
	"github.com/fyzanshaik/timer-game/internal/application/common"
	"github.com/fyzanshaik/timer-game/internal/application/interfaces"
	"github.com/fyzanshaik/timer-game/internal/config"
)

const (
	handlerTimeout    = 5 * time.Second
	rateLimitRequests = 5000 // Requests per second
	rateLimitBurst    = 1000 // Burst capacity
)

type Handler struct {
	users       interfaces.UserService
	scores      interfaces.ScoreService
	leaderboard interfaces.LeaderboardService
	limiter     *rate.Limiter
	metrics     *Metrics
}

func NewHandler(
	users interfaces.UserService,
	scores interfaces.ScoreService,
	leaderboard interfaces.LeaderboardService,
) *Handler {
	requests := config.EnvInt("RATE_LIMIT_REQUESTS", rateLimitRequests)
	burst := config.EnvInt("RATE_LIMIT_BURST", rateLimitBurst)

	return &Handler{
		users:       users,
		scores:      scores,
		leaderboard: leaderboard,
		limiter:     rate.NewLimiter(rate.Limit(requests), burst),
		metrics:     NewMetrics(),
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "SERVER IS UP & RUNNING",
	})
}

func (h *Handler) UserCheck(c echo.Context) error {
	var ensureCommand command.EnsureUserCommand
	if err := c.Bind(&ensureCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username is required"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.users.EnsureUser(ctx, &ensureCommand)
	if err != nil {
		return h.errorResponse(c, err, "error")
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, result.Result)
}

func (h *Handler) UpdateScore(c echo.Context) error {
	var updateCommand command.UpdateScoreCommand
	if err := c.Bind(&updateCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body."})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.scores.UpdateScore(ctx, &updateCommand)
	if err != nil {
		return h.errorResponse(c, err, "message")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Leaderboard(c echo.Context) error {
	timerName := c.Param("timerName")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.leaderboard.GetLeaderboard(ctx, timerName)
	if err != nil {
		return h.errorResponse(c, err, "error")
	}

	return c.JSON(http.StatusOK, result.Entries)
}

func (h *Handler) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), handlerTimeout)
}

// errorResponse maps the error taxonomy onto statuses. Only the stable
// message and kind reach the caller; the wrapped cause stays in the log.
func (h *Handler) errorResponse(c echo.Context, err error, field string) error {
	var appErr *common.AppError
	if !errors.As(err, &appErr) {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{field: "Internal server error"})
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case common.KindInvalidInput:
		status = http.StatusBadRequest
	case common.KindNotFound:
		status = http.StatusNotFound
	case common.KindConflict:
		status = http.StatusConflict
	case common.KindUpstream:
		status = http.StatusServiceUnavailable
	case common.KindDataIntegrity:
		status = http.StatusInternalServerError
	}

	if appErr.Kind == common.KindUpstream || appErr.Kind == common.KindDataIntegrity {
		c.Logger().Error(appErr)
	}

	return c.JSON(status, echo.Map{field: appErr.Message, "kind": string(appErr.Kind)})
}
