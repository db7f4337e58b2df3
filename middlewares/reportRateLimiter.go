package middlewares

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	reportWindow      = 24 * time.Hour
	maxMemoryLimiters = 10000
)

// ReportRateLimiter caps report submissions per user per 24 hours with a
// Redis counter under prefix:user_id. A nil client falls back to per-process
// token buckets.
func ReportRateLimiter(rdb *redis.Client, prefix string, limit int) gin.HandlerFunc {
	if rdb == nil {
		slog.Warn("Redis is not configured, report limits are kept per process")
		return memoryReportLimiter(limit)
	}
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		// Create individual key for each user
		userKey := prefix + ":" + userID

		count, err := rdb.Incr(ctx, userKey).Result()
		if err != nil {
			slog.Error("rate limiter increment failed", "key", userKey, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			if err := rdb.Expire(ctx, userKey, reportWindow).Err(); err != nil {
				slog.Error("rate limiter expire failed", "key", userKey, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := rdb.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// memoryReportLimiter gives each user a bucket of limit reports refilled
// evenly over reportWindow. An idle bucket is full again after one window,
// so buckets expire then.
func memoryReportLimiter(limit int) gin.HandlerFunc {
	limit = max(limit, 1)
	every := rate.Every(reportWindow / time.Duration(limit))
	buckets := expirable.NewLRU[string, *rate.Limiter](maxMemoryLimiters, nil, reportWindow)
	var mu sync.Mutex

	bucket := func(userID string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := buckets.Get(userID)
		if !ok {
			lim = rate.NewLimiter(every, limit)
			buckets.Add(userID, lim)
		}
		return lim
	}

	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		res := bucket(userID).Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": delay.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
