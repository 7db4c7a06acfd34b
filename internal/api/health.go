package api

import (
	"back_office/internal/cache" // Redis cache
	"context"                    // Ping deadline
	"net/http"                   // HTTP status codes
	"time"                       // Time durations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// HealthHandler reports whether the database and, when configured, Redis answer a ping
func HealthHandler(db *gorm.DB, c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "cache": "disabled"}
		healthy := true

		sqlDB, err := db.DB() // Underlying connection pool
		if err == nil {
			err = sqlDB.PingContext(pingCtx)
		}
		if err != nil {
			logrus.WithError(err).Error("Database ping failed")
			status["database"] = "unavailable"
			healthy = false
		}
		if c != nil {
			status["cache"] = "ok"
			if err := c.Ping(pingCtx); err != nil {
				logrus.WithError(err).Error("Redis ping failed")
				status["cache"] = "unavailable"
				healthy = false
			}
		}

		if !healthy {
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		ctx.JSON(http.StatusOK, status)
	}
}
