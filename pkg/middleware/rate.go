package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/shashiranjanraj/sweetshop/pkg/cache"
	"github.com/shashiranjanraj/sweetshop/pkg/response"
)

// bucket tracks a fixed-window request count for one IP.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

// limiter keeps per-IP counters either in Redis (shared across
// replicas) or in process memory when Redis is unavailable.
type limiter struct {
	redis  *cache.Client
	max    int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

func (l *limiter) allow(r *http.Request, ip string) bool {
	if l.redis.Available() {
		n, err := l.redis.Incr(r.Context(), "ratelimit:"+ip, l.window)
		if err == nil {
			return n <= int64(l.max)
		}
		// fall through to memory on Redis errors
	}
	return l.bucketFor(ip).allow(l.max, l.window)
}

func (l *limiter) bucketFor(ip string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[ip]; ok {
		return b
	}
	b := &bucket{resetAt: time.Now().Add(l.window)}
	l.buckets[ip] = b
	return b
}

// evictLoop removes expired in-memory buckets once a minute so memory
// stays bounded on long-running servers.
func (l *limiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, b := range l.buckets {
			b.mu.Lock()
			expired := now.After(b.resetAt)
			b.mu.Unlock()
			if expired {
				delete(l.buckets, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit limits each IP to max requests per window. redisClient may
// be a disconnected client; counting then happens in process memory.
func RateLimit(redisClient *cache.Client, max int, window time.Duration) func(http.Handler) http.Handler {
	l := &limiter{
		redis:   redisClient,
		max:     max,
		window:  window,
		buckets: map[string]*bucket{},
	}
	go l.evictLoop()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			if !l.allow(r, ip) {
				response.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
