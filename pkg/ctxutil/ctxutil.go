// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	ownerKey     struct{}
	requestIDKey struct{}
)

// WithOwnerID marks ctx as acting on behalf of the given account.
func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, id)
}

// OwnerIDFromCtx reports the acting account. uuid.Nil is treated as absent.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(ownerKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when no request ID was attached.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
