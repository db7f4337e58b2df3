package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicpulse/cache"
	"civicpulse/models"
	"civicpulse/triage"
)

type workerListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=all Available Busy Offline available busy offline"`
	Zone     string `form:"zone" binding:"max=100"`
	Distance string `form:"distance" binding:"omitempty,oneof=all near far"`
	Q        string `form:"q" binding:"max=200"`
}

func workerQuery(c *gin.Context) (triage.WorkerQuery, error) {
	var in workerListQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		return triage.WorkerQuery{}, err
	}
	q := triage.WorkerQuery{Zone: in.Zone, Distance: in.Distance, Text: in.Q}
	if ws, ok := models.ParseWorkerStatus(in.Status); ok {
		q.Status = ws
	}
	return q, nil
}

// ListWorkers returns the filtered worker pool in store order
func (ctl *Controller) ListWorkers(c *gin.Context) {
	q, err := workerQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	pool, err := ctl.store.Workers(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve workers", err)
		return
	}
	filtered := triage.FilterWorkers(pool, q)
	views := make([]workerView, 0, len(filtered))
	for _, w := range filtered {
		views = append(views, newWorkerView(w))
	}
	c.JSON(http.StatusOK, gin.H{
		"workers":      views,
		"totalWorkers": len(views),
	})
}

// RecommendWorker picks the best eligible worker from the filtered pool.
// recommended is null when nobody is eligible.
func (ctl *Controller) RecommendWorker(c *gin.Context) {
	q, err := workerQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	pool, err := ctl.store.Workers(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve workers", err)
		return
	}
	candidates := triage.FilterWorkers(pool, q)

	var recommended *workerView
	if w, ok := triage.RecommendWorker(candidates); ok {
		v := newWorkerView(w)
		recommended = &v
	}
	c.JSON(http.StatusOK, gin.H{
		"recommended": recommended,
		"eligible":    len(triage.Eligible(candidates)),
		"considered":  len(candidates),
	})
}

// WorkerStats returns the workforce summary cards
func (ctl *Controller) WorkerStats(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := cache.Remember(ctx, ctl.cache, cache.Key("workers", "stats"), func() (triage.WorkerStats, error) {
		pool, err := ctl.store.Workers(ctx)
		if err != nil {
			return triage.WorkerStats{}, err
		}
		return triage.SummarizeWorkers(pool), nil
	})
	if err != nil {
		serverError(c, "Failed to summarize workers", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
