package auth

import "context"

type identityKey struct{}

func WithIdentity(ctx context.Context, idn *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, idn)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	idn, ok := ctx.Value(identityKey{}).(*Identity)
	return idn, ok
}
