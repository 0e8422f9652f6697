package context

import gocontext "context"

type actorKey struct{}

// WithActorID returns a context carrying the actor recorded on activity
// entries.
func WithActorID(ctx gocontext.Context, actorID string) gocontext.Context {
	return gocontext.WithValue(ctx, actorKey{}, actorID)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx gocontext.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
