package ratelimit

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// New returns a middleware that applies a per-client token bucket.
// Clients are keyed by remote IP; the port is ignored so that one
// browser does not get a fresh bucket per connection.
func New(r rate.Limit, burst int) func(next http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*rate.Limiter)
	)

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, exists := visitors[ip]
		if !exists {
			limiter = rate.NewLimiter(r, burst)
			visitors[ip] = limiter
		}
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ip, _, err := net.SplitHostPort(req.RemoteAddr)
			if err != nil {
				ip = req.RemoteAddr
			}

			if !getVisitor(ip).Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
