package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitorLimiter hands out one token-bucket limiter per client address.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

func newVisitorLimiter(perMinute, burst int) *visitorLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

// Allow reports whether the client behind the request still has budget.
func (v *visitorLimiter) Allow(r *http.Request) bool {
	key := clientKey(r)

	v.mu.Lock()
	limiter, ok := v.visitors[key]
	if !ok {
		limiter = rate.NewLimiter(v.limit, v.burst)
		v.visitors[key] = limiter
	}
	v.mu.Unlock()

	return limiter.Allow()
}

// clientKey identifies the requesting client by remote address, ignoring the
// ephemeral port so consecutive requests from one host share a bucket.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
