package middleware

import "context"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller, resolved once per request by
// AuthMiddleware. Role gating never trusts anything in the request body.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom retrieves the caller identity safely.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
