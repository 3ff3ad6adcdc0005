package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultLimiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterStore struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

func newRateLimiterStore(limit rate.Limit, burst int, idleTTL time.Duration, now time.Time) *rateLimiterStore {
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}
	return &rateLimiterStore{
		clients:   make(map[string]*clientLimiter),
		limit:     limit,
		burst:     burst,
		idleTTL:   idleTTL,
		lastSweep: now,
	}
}

func (s *rateLimiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.sweep(now)
	}

	c, ok := s.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep drops clients idle for at least idleTTL. Caller holds mu.
func (s *rateLimiterStore) sweep(now time.Time) {
	for key, c := range s.clients {
		if now.Sub(c.lastSeen) >= s.idleTTL {
			delete(s.clients, key)
		}
	}
	s.lastSweep = now
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// NewRateLimitMiddleware applies a token bucket per client IP. A
// non-positive rate turns the middleware into a no-op.
func NewRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	store := newRateLimiterStore(rate.Limit(cfg.RequestsPerSecond), burst, cfg.IdleTTL, time.Now())
	slog.Info("rate limit middleware initialized", "rps", cfg.RequestsPerSecond, "burst", burst, "idle_ttl", store.idleTTL)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip, time.Now()).Allow() {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.Response{
				Status:  http.StatusTooManyRequests,
				Message: "Too many requests",
			})
			return
		}
		c.Next()
	}
}
