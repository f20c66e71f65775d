package auth

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDCtxKey ctxKey = iota
	sessionCtxKey
)

type session struct {
	token  string
	claims *Claims
}

func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext returns the authenticated user set by the auth middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// ContextWithSession stores the verified bearer token, so it can be revoked on logout.
func ContextWithSession(ctx context.Context, token string, claims *Claims) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session{token: token, claims: claims})
}

func SessionFromContext(ctx context.Context) (string, *Claims, bool) {
	s, ok := ctx.Value(sessionCtxKey).(session)
	if !ok || s.claims == nil {
		return "", nil, false
	}
	return s.token, s.claims, true
}
