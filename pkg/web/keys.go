package web

import "context"

// requestIDKey is the private context key for the per-request ID set by
// RequestIDInjector. An unexported struct type keeps it collision-free.
type requestIDKey struct{}

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID reports the request ID stored in ctx, if any. Handlers use
// it to tag their log records; the zero value means no middleware ran.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
