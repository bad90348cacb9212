package entity

import (
	"context"
)

type (
	CtxKeyIP    struct{}
	CtxKeyUser  struct{}
	CtxKeyToken struct{}
)

// UserFromContext returns the authenticated user or ErrUnauthenticated.
func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(User)
	if !ok {
		return User{}, ErrUnauthenticated
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken{}, token)
}

// TokenFromContext returns the caller's access token or an empty string.
func TokenFromContext(ctx context.Context) string {
	token, ok := ctx.Value(CtxKeyToken{}).(string)
	if !ok {
		return ""
	}

	return token
}
