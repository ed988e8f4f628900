package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"hospital-management-api/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval  = time.Minute
	limiterStaleThreshold = 3 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Idle buckets are swept
// by a background goroutine until Stop is called.
type RateLimiter struct {
	log     *logrus.Logger
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewRateLimiter(log *logrus.Logger, rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		log:      log,
		limit:    rate.Limit(rps),
		burst:    burst,
		clients:  make(map[string]*client),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	rl.wg.Add(1)
	go rl.sweepLoop()

	return rl
}

// Stop halts the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	if rl.stopped.CompareAndSwap(false, true) {
		close(rl.stopChan)
		rl.wg.Wait()
		rl.log.Debug("Rate limiter stopped")
	}
}

func (rl *RateLimiter) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !rl.allow(clientIP(req)) {
			w.Header().Set("Retry-After", "1")
			response.TooManyRequests(w, "")
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweepLoop() {
	defer rl.wg.Done()

	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-limiterStaleThreshold)
	for ip, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}
