package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"taskapp/internal/core/telemetry"
	"taskapp/pkg"
	"taskapp/pkg/config"
)

// RateLimiter tracks per-client request counts in a short-lived cache.
type RateLimiter struct {
	cache   *cache.Cache
	configs map[string]config.RateLimitConfig
	logger  *config.AppLogger
	metrics *telemetry.AppMetrics
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func NewRateLimiter(configs map[string]config.RateLimitConfig, logger *config.AppLogger, metrics *telemetry.AppMetrics) *RateLimiter {
	return &RateLimiter{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		configs: configs,
		logger:  logger,
		metrics: metrics,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()

		limit, configured := rl.configs[route]

		if !configured {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s|%s", route, pkg.GetClientIP(c))
		now := time.Now()

		entry := rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}
			}
		}

		entry.Count++
		rl.cache.Set(key, entry, limit.Window)

		if entry.Count > limit.Requests {
			rl.metrics.RecordRateLimitHit(c.FullPath(), "client_ip")

			rl.logger.Logger.Ctx(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("route", route),
				zap.String("client_ip", pkg.GetClientIP(c)),
				zap.Int("count", entry.Count),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", int(time.Until(entry.ResetTime).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
