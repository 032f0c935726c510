package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mohamm188/Trend-phone/internal/infra"
	"github.com/mohamm188/Trend-phone/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB and Redis connectivity and reports the SMTP breaker state
// and the alert DLQ backlog; never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		// -1 means the depth could not be read, not an empty queue.
		dlqDepth, err := worker.DLQLength(ctx, rdb, worker.QueueLowStock)
		if err != nil {
			dlqDepth = -1
		}

		c.JSON(status, gin.H{
			"ok":           status == http.StatusOK,
			"db":           dbStatus,
			"redis":        redisStatus,
			"smtp_breaker": mailer.BreakerState(),
			"dlq_depth":    dlqDepth,
		})
	}
}
