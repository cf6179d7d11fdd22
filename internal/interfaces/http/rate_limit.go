package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a per-IP token-bucket middleware. Stale clients are
// evicted after five minutes of inactivity; eviction happens lazily on
// request, so the middleware holds no background goroutine.
func RateLimit(rps rate.Limit, burst int) fiber.Handler {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastSweep = time.Now()
	)

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		mu.Lock()
		if time.Since(lastSweep) > time.Minute {
			for addr, cl := range clients {
				if time.Since(cl.lastSeen) > 5*time.Minute {
					delete(clients, addr)
				}
			}
			lastSweep = time.Now()
		}
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rps, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		mu.Unlock()

		if !cl.limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "too many requests",
			})
		}
		return c.Next()
	}
}
