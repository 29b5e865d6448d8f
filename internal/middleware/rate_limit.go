package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
)

// RateLimiter guarda um token bucket por IP.
type RateLimiter struct {
	perMin int
	log    *zap.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimiter(perMin int, log *zap.Logger) *RateLimiter {
	if perMin <= 0 {
		perMin = 120
	}
	return &RateLimiter{
		perMin:   perMin,
		log:      logger.OrNop(log),
		limiters: make(map[string]*rate.Limiter),
	}
}

func (r *RateLimiter) limiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(r.perMin)), r.perMin)
		r.limiters[ip] = l
	}
	return l
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.limiter(ip).Allow() {
			r.log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.TooManyRequests(c, "rate_limited", "Muitas requisições. Tente novamente em instantes.")
			c.Abort()
			return
		}
		c.Next()
	}
}
