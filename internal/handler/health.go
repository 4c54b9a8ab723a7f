package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response. Redis is the primary store and
// gates the overall status; the relational DB is optional and reported as
// "disabled" when not configured.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		dbStatus := "disabled"
		if db != nil {
			dbStatus = "connected"
			var probe struct {
				Status string
			}
			if err := db.WithContext(ctx).Raw("SELECT 'ok' AS status").Scan(&probe).Error; err != nil || probe.Status != "ok" {
				dbStatus = "error"
			}
		}

		status := http.StatusOK
		if redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"redis": redisStatus,
			"db":    dbStatus,
		})
	}
}
