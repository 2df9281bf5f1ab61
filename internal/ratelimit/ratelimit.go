// Package ratelimit provides per-client request throttling for the HTTP
// API. Each client gets a token bucket; idle buckets are swept
// periodically so the map does not grow without bound.
package ratelimit

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 5 * time.Minute
	idleTTL         = 10 * time.Minute
	uaKeyMax        = 50
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
}

// New creates a limiter allowing maxPerMinute requests per client with
// burst headroom equal to the per-minute allowance.
func New(maxPerMinute int) *Limiter {
	l := &Limiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Limit(float64(maxPerMinute) / 60.0),
		burst:   maxPerMinute,
	}
	go l.sweep()
	return l
}

func (l *Limiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.clients[clientID]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[clientID] = b
	}
	b.lastSeen = time.Now()
	return b.limiter.Allow()
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-idleTTL)
		l.mu.Lock()
		for id, b := range l.clients {
			if b.lastSeen.Before(cutoff) {
				delete(l.clients, id)
			}
		}
		l.mu.Unlock()
	}
}

// ClientID derives a throttling key from the first forwarded IP and a
// truncated user agent. The truncation keeps hostile clients from
// minting unbounded keys.
func ClientID(r *http.Request) string {
	ip := "unknown"
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ip = strings.TrimSpace(strings.Split(fwd, ",")[0])
	} else if r.RemoteAddr != "" {
		ip = r.RemoteAddr
	}
	ua := r.UserAgent()
	if ua == "" {
		ua = "unknown"
	}
	if len(ua) > uaKeyMax {
		ua = ua[:uaKeyMax]
	}
	return ip + "-" + ua
}

// Middleware rejects over-limit requests with 429 and a Retry-After
// hint.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(ClientID(r)) {
			retryAfter := 60
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error":"Too many requests. Please wait %d seconds before trying again.","retryAfter":%d}`, retryAfter, retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}
