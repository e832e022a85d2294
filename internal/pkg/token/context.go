package token

import "context"

type authContextKey struct{}

// Identity is the authenticated principal decoded from a verified token.
type Identity struct {
	// Username is the value of the configured username claim.
	Username string
	// Roles are the role names carried by the configured roles claim.
	Roles []string
	// Claims is the full decoded claim set.
	Claims Claims
}

// SetAuth stores the authenticated identity in the context.
func SetAuth(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, authContextKey{}, id)
}

// GetAuth returns the identity stored in the context, if any.
func GetAuth(ctx context.Context) *Identity {
	id, ok := ctx.Value(authContextKey{}).(Identity)
	if !ok {
		return nil
	}

	return &id
}
