package session

import (
	"context"

	"risk-demo/internal/domain"
)

type sessionCtxKey struct{}

// WithSession stores the session in the context along with its ID.
func WithSession(ctx context.Context, s *Session) context.Context {
	ctx = domain.WithSessionID(ctx, s.ID)
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}
