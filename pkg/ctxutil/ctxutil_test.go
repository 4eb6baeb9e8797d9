package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name   string
		ctx    context.Context
		want   uuid.UUID
		wantOK bool
	}{
		{"set", WithUserID(context.Background(), id), id, true},
		{"missing", context.Background(), uuid.Nil, false},
		{"nil uuid", WithUserID(context.Background(), uuid.Nil), uuid.Nil, false},
		{"string under a look-alike key", context.WithValue(context.Background(), "user_id", id.String()), uuid.Nil, false},
		{"overwritten", WithUserID(WithUserID(context.Background(), uuid.New()), id), id, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := UserIDFromCtx(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromCtx(context.Background()))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromCtx(ctx))

	// Keys are independent.
	ctx = WithUserID(ctx, uuid.New())
	assert.Equal(t, "req-42", RequestIDFromCtx(ctx))
}
