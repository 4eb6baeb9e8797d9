package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagMiddleware(trace *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+":in")
			next.ServeHTTP(w, r)
			*trace = append(*trace, name+":out")
		})
	}
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var trace []string
	final := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		trace = append(trace, "handler")
		w.WriteHeader(http.StatusNoContent)
	})

	h := Chain(tagMiddleware(&trace, "request_id"), tagMiddleware(&trace, "auth"))(final)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"request_id:in", "auth:in", "handler", "auth:out", "request_id:out"}, trace)
}

func TestChain_SkipsNil(t *testing.T) {
	t.Parallel()

	var trace []string
	final := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { trace = append(trace, "handler") })

	h := Chain(nil, tagMiddleware(&trace, "limit"), nil)(final)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"limit:in", "handler", "limit:out"}, trace)
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	called := false
	final := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	Chain()(final).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}
