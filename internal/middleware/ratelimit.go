// File: internal/middleware/ratelimit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"coursehub/internal/dto"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig 限流參數
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// AuthLimit 認證端點的嚴格限流（防暴力嘗試）
var AuthLimit = RateLimitConfig{
	RequestsPerWindow: 5,
	Window:            time.Minute,
	Burst:             5,
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit 依客戶端 IP 限流，超出時回應 429
// 閒置超過十分鐘的記錄會在後續請求時清除
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	var mu sync.Mutex
	visitors := map[string]*visitor{}
	limit := rate.Every(cfg.Window / time.Duration(cfg.RequestsPerWindow))

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(limit, cfg.Burst)}
			visitors[ip] = v
		}
		v.lastSeen = now

		if len(visitors) > 1000 {
			for ip, v := range visitors {
				if now.Sub(v.lastSeen) > 10*time.Minute {
					delete(visitors, ip)
				}
			}
		}

		return v.limiter.Allow()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, dto.HTTPError{Message: "too many requests"})
			}
			return next(c)
		}
	}
}
