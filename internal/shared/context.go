package shared

import "context"

type sessionContextKey struct{}

// ContextWithSession attaches the visitor's session to the request context;
// the session middleware does this once per request.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext returns the request's session, or nil when no session
// middleware ran (bare handlers in tests).
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}
