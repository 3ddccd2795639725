package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "algosphere/internal/delivery/http/helpers"
	"algosphere/internal/domain"
)

type contextKey string

const walletAddressKey contextKey = "walletAddress"

// SetWalletAddress returns a context with the caller's wallet address set.
// Used by auth middleware.
func SetWalletAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, walletAddressKey, address)
}

// WalletAddressFromContext returns the authenticated wallet address from the
// context, if present.
func WalletAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(walletAddressKey).(string)
	return addr, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// caller's wallet address in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			address, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetWalletAddress(r.Context(), address))
			next(w, r)
		}
	}
}
