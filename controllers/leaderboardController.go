package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"civicpulse/cache"
	"civicpulse/triage"
)

const defaultLeaderboardSize = 10

// Leaderboard ranks citizen reporters
func (ctl *Controller) Leaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLeaderboardSize)))
	if err != nil || limit < 1 || limit > triage.MaxLimit {
		limit = defaultLeaderboardSize
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	board, err := cache.Remember(ctx, ctl.cache, cache.Key("leaderboard", strconv.Itoa(limit)), func() ([]triage.Contributor, error) {
		complaints, err := ctl.store.Complaints(ctx)
		if err != nil {
			return nil, err
		}
		return triage.Leaderboard(complaints, limit), nil
	})
	if err != nil {
		serverError(c, "Failed to build leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaders": board})
}
