package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	handler := New(1, 3)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	// Burst of 3 is allowed, the 4th request is rejected.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))

	// Same IP on another port shares the bucket.
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:9999"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}
