package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/rapidlingo-backend/pkg/ctxutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func postFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/practice/replenish", nil)
	req.RemoteAddr = addr
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit("replenish", 10)(okHandler())

	for i := range 10 {
		rec := serve(handler, postFrom("1.2.3.4:1234"))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit("replenish", 5)(okHandler())

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(handler, postFrom("1.2.3.4:1234")).Code)
	}

	rec := serve(handler, postFrom("1.2.3.4:9999"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "port does not change the client")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit("replenish", 2)(okHandler())

	for range 2 {
		serve(handler, postFrom("1.1.1.1:1234"))
	}

	assert.Equal(t, http.StatusOK, serve(handler, postFrom("2.2.2.2:5678")).Code)
}

func TestRateLimiter_ScopesIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	replenish := rl.Limit("replenish", 1)(okHandler())
	explain := rl.Limit("explain", 1)(okHandler())

	assert.Equal(t, http.StatusOK, serve(replenish, postFrom("1.1.1.1:1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(replenish, postFrom("1.1.1.1:1")).Code)
	assert.Equal(t, http.StatusOK, serve(explain, postFrom("1.1.1.1:1")).Code)
}

func TestRateLimiter_KeysByUser(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit("replenish", 1)(okHandler())

	asUser := func(id uuid.UUID) *http.Request {
		req := postFrom("10.0.0.1:1234")
		return req.WithContext(ctxutil.WithUserID(req.Context(), id))
	}

	alice, bob := uuid.New(), uuid.New()
	assert.Equal(t, http.StatusOK, serve(handler, asUser(alice)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, asUser(alice)).Code)
	assert.Equal(t, http.StatusOK, serve(handler, asUser(bob)).Code, "users behind one IP are independent")
}

func TestBucket_Refill(t *testing.T) {
	start := time.Now()
	b := &bucket{tokens: 0, maxTokens: 60, refillRate: 1, lastRefill: start}

	assert.Equal(t, time.Second, b.take(start))
	assert.Zero(t, b.take(start.Add(1100*time.Millisecond)))
	assert.InDelta(t, 900*time.Millisecond, b.take(start.Add(1200*time.Millisecond)), float64(time.Millisecond))

	assert.Zero(t, b.take(start.Add(time.Hour)))
	assert.InDelta(t, 59, b.tokens, 0.001, "refill is capped at the bucket size")
}
