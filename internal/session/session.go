// Package session resolves the identity an operation runs as.
package session

import (
	"context"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
)

type Provider interface {
	// Returns ErrUnauthenticated when there is no active session
	CurrentUserID(ctx context.Context) (uuid.UUID, error)
}

// Static is a session that always belongs to the same user.
type Static uuid.UUID

func (s Static) CurrentUserID(context.Context) (uuid.UUID, error) {
	uid := uuid.UUID(s)
	if uid == uuid.Nil {
		return uuid.Nil, errorvalues.ErrUnauthenticated
	}
	return uid, nil
}

// None never has a session.
type None struct{}

func (None) CurrentUserID(context.Context) (uuid.UUID, error) {
	return uuid.Nil, errorvalues.ErrUnauthenticated
}

type ctxKey struct{}

func WithUserID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, uid)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		return uuid.Nil, false
	}
	return uid, true
}

// FromContext reads the user id stored by WithUserID.
type FromContext struct{}

func (FromContext) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, errorvalues.ErrUnauthenticated
	}
	return uid, nil
}
