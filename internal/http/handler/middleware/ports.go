package middleware

import (
	"context"

	tokenIssuer "vagas/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Validate(token string) (tokenIssuer.Claims, error)
}

//counterfeiter:generate -o fake -fake-name Limiter . Limiter
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
