// Copyright (c) 2026 Geodex. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/geodexhq/geodex/internal/platform/ctxutil"
	"github.com/geodexhq/geodex/internal/platform/sec"
)

// TokenVerifier abstracts the JWT verification dependency so the middleware
// does not depend on key material directly.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// # Authentication

// Authenticate parses the Authorization header and, when a valid bearer token
// is present, attaches the verified claims to the request context.
//
// The middleware is deliberately lenient: requests without a token (or with an
// invalid one) continue anonymously. Route-level guards such as RequireAuth
// decide whether anonymity is acceptable.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Extract the bearer token from the Authorization header
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Verify signature, issuer and expiry
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				// Invalid tokens degrade to anonymous access rather than a
				// hard failure; scoped queries will simply return nothing
				// the caller is not allowed to see.
				next.ServeHTTP(writer, request)
				return
			}

			// 3. Attach the verified identity to the context
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Authorization Guards

// RequireAuth rejects requests that carry no verified identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

		if ctxutil.GetAuthUser(request.Context()) == nil {
			writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RequireRole rejects authenticated requests whose role is below the target.
// It implies RequireAuth.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			if !sec.UserRole(claims.Role).AtLeast(role) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
