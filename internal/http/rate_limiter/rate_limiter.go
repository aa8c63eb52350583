package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients = make(map[string]*clientLimiter)
	mu      sync.Mutex
)

// GetClient returns the per-client limiter, creating it on first sight.
func GetClient(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	c, exists := clients[ip]
	if !exists {
		limiter := rate.NewLimiter(5, 20) // 5 requests/sec, burst of 20
		clients[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// StartClientCleanupLoop drops limiters for clients idle over five minutes.
func StartClientCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, c := range clients {
			if time.Since(c.lastSeen) > 5*time.Minute {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllClients resets the limiter table.
func CleanupAllClients() {
	mu.Lock()
	defer mu.Unlock()
	clients = make(map[string]*clientLimiter)
}
