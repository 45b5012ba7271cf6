package middleware

import (
	"context"
	"net/http"
	"strings"

	"homenest-backend/internal/auth"
	"homenest-backend/internal/observability"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type contextKey string

const emailKey contextKey = "tokenEmail"

// VerifyToken requires an "Authorization: Bearer <token>" header and
// resolves it through v. A missing header or token is answered with 401.
// A token the provider rejects is answered with 404 "forbidden access!",
// which is the status existing clients expect.
func VerifyToken(v auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				observability.ObserveVerification("missing")
				http.Error(w, "un-authorize access!", http.StatusUnauthorized)
				return
			}

			email, err := v.Verify(r.Context(), token)
			if err != nil {
				observability.ObserveVerification("rejected")
				zerolog.Ctx(r.Context()).Info().Err(err).Msg("token rejected")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "forbidden access!"})
				return
			}

			observability.ObserveVerification("ok")
			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetEmail returns the verified principal attached by VerifyToken, or "".
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// WithEmail attaches a principal to ctx the same way VerifyToken does.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// bearerToken returns the second space-separated segment of the header.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
