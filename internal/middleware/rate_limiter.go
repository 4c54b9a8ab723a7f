package middleware

import (
	"net/http"
	"sync"
	"time"

	"licoreria/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana tracks request counts per IP within a sliding window.
type ventana struct {
	mu        sync.Mutex
	count     int
	windowEnd time.Time
}

// limiter is a per-IP sliding-window counter shared by the login and general
// API limiters, each with its own map and thresholds.
type limiter struct {
	mu      sync.Mutex
	ips     map[string]*ventana
	limit   int
	window  time.Duration
	mensaje string
}

func newLimiter(limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		ips:     make(map[string]*ventana),
		limit:   limit,
		window:  window,
		mensaje: mensaje,
	}
	go l.purgar()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		v, ok := l.ips[ip]
		if !ok {
			v = &ventana{}
			l.ips[ip] = v
		}
		l.mu.Unlock()

		v.mu.Lock()
		defer v.mu.Unlock()

		now := time.Now()
		if now.After(v.windowEnd) {
			v.count = 0
			v.windowEnd = now.Add(l.window)
		}

		v.count++
		if v.count > l.limit {
			c.Header("Retry-After", v.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// purgar removes expired entries so IPs that never return do not accumulate.
func (l *limiter) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, v := range l.ips {
			v.mu.Lock()
			if now.After(v.windowEnd) {
				delete(l.ips, ip)
				purged++
			}
			v.mu.Unlock()
		}
		remaining := len(l.ips)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter map purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
