// Package actor carries the authenticated staff identity through a request
// context, replacing any notion of an ambient "current user".
package actor

import "context"

type ctxKey struct{}

// WithID returns a context carrying the acting user's identifier.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID returns the acting user's identifier, or "" when none was attached.
func ID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}
