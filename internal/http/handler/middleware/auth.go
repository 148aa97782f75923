package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	tokenIssuer "vagas/pkg/jwt"

	"go.uber.org/zap"
)

const bearerPrefix = "bearer "

type Authenticator struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthenticator(logger *zap.SugaredLogger, verifier TokenVerifier) *Authenticator {
	return &Authenticator{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid bearer token with 401 and
// stores the verified claims in the context otherwise.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestIDFrom(r.Context())

		token := bearerToken(r.Header.Get("Authorization"))
		claims, err := a.verifier.Validate(token)
		if err != nil {
			reason := "invalid token"
			switch {
			case errors.Is(err, tokenIssuer.ErrTokenMissing):
				reason = "missing bearer token"
			case errors.Is(err, tokenIssuer.ErrTokenExpired):
				reason = "token expired"
			}

			w.Header().Set("WWW-Authenticate", `Bearer realm="vagas"`)
			writeError(w, http.StatusUnauthorized, "Authentication failed", reason)
			a.logs.Infow("request not authenticated",
				"reason", reason,
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the claims stored by Authenticate.
func ClaimsFrom(ctx context.Context) (tokenIssuer.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(tokenIssuer.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
