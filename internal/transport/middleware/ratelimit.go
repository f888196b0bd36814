package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const idleBucketTTL = 10 * time.Minute

// RateLimiter throttles credential endpoints per client address and route.
// Each (ip, route) pair owns a token bucket refilled continuously.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[bucketKey]*bucket
	now     func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

type bucketKey struct {
	ip    string
	route string
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter starts a janitor that drops idle buckets every sweep
// interval. Call Stop on shutdown.
func NewRateLimiter(sweep time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[bucketKey]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.janitor(sweep)
	return rl
}

// Stop ends the janitor. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client for the wrapped route, with a
// burst of the same size. Rejections carry Retry-After in whole seconds.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bucketKey{ip: clientIP(r), route: r.Method + " " + r.URL.Path}
			if wait, ok := rl.take(key, perMinute); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "Too many attempts, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token, or reports how long until one is available.
func (rl *RateLimiter) take(key bucketKey, perMinute int) (time.Duration, bool) {
	capacity := float64(perMinute)
	perSecond := capacity / 60

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, seen: now}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.seen).Seconds()*perSecond)
	b.seen = now

	if b.tokens < 1 {
		missing := 1 - b.tokens
		return time.Duration(missing / perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idleBucketTTL)
	for k, b := range rl.buckets {
		if b.seen.Before(cutoff) {
			delete(rl.buckets, k)
		}
	}
}

func (rl *RateLimiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// clientIP drops the port so every connection from one host shares a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
