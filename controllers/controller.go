package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"civicpulse/actions"
	"civicpulse/cache"
	"civicpulse/config"
	"civicpulse/middlewares"
	"civicpulse/models"
	"civicpulse/session"
	"civicpulse/store"
	"civicpulse/triage"
)

const requestTimeout = 10 * time.Second

// Controller holds what every handler reads from. Handlers never write to the
// store; actions go through the gateway.
type Controller struct {
	store    store.Repository
	cache    *cache.Cache
	sessions session.Store
	gateway  actions.Gateway
	cfg      *config.Config
}

func New(cfg *config.Config, repo store.Repository, c *cache.Cache, sessions session.Store, gateway actions.Gateway) *Controller {
	return &Controller{store: repo, cache: c, sessions: sessions, gateway: gateway, cfg: cfg}
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// caller returns the authenticated account, answering 401 when there is none.
func caller(c *gin.Context) (models.Account, bool) {
	account, ok := middlewares.CurrentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	}
	return account, ok
}

func serverError(c *gin.Context, msg string, err error) {
	slog.ErrorContext(c.Request.Context(), msg, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// pageParams parses page and limit the way the list endpoints always have:
// bad numbers fall back to the defaults.
func pageParams(c *gin.Context, total int) triage.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(triage.DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(triage.DefaultLimit)))
	return triage.Paginate(total, page, limit)
}

// workerIndex fetches the worker pool keyed by id.
func (ctl *Controller) workerIndex(ctx context.Context) (map[string]models.Worker, []models.Worker, error) {
	workers, err := ctl.store.Workers(ctx)
	if err != nil {
		return nil, nil, err
	}
	index := make(map[string]models.Worker, len(workers))
	for _, w := range workers {
		index[w.ID] = w
	}
	return index, workers, nil
}

func (ctl *Controller) slaThreshold() time.Duration {
	if ctl.cfg == nil || ctl.cfg.SLAThresholdHours <= 0 {
		return triage.DefaultSLAThreshold
	}
	return ctl.cfg.SLAThreshold()
}

// rememberView stores the caller's latest view state. Failures only cost the
// restore, so they are logged and ignored.
func (ctl *Controller) rememberView(ctx context.Context, userID string, update func(*session.View)) {
	if ctl.sessions == nil {
		return
	}
	view, _, err := ctl.sessions.Get(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load view state", "user", userID, "error", err)
		return
	}
	update(&view)
	view.UpdatedAt = time.Now().UTC()
	if err := ctl.sessions.Put(ctx, userID, view); err != nil {
		slog.WarnContext(ctx, "failed to save view state", "user", userID, "error", err)
	}
}
