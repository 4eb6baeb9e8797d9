package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/rapidlingo-backend/pkg/ctxutil"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantKeep bool
	}{
		{"reuses incoming", "trace-abc-123", true},
		{"generates when missing", "", false},
		{"replaces whitespace", "has space", false},
		{"replaces control bytes", "id\x00x", false},
		{"replaces oversized", strings.Repeat("a", maxRequestIDLength+1), false},
		{"keeps max length", strings.Repeat("b", maxRequestIDLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = ctxutil.RequestIDFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/practice", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			assert.Equal(t, got, seen, "context and response header carry the same id")
			if tt.wantKeep {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated id is a UUID")
		})
	}
}
