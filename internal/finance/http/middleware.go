package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

// AuthnMiddleware resolves the bearer token on every request and injects
// the account onto the context. Any rejection, whatever the internal
// reason, answers the same 401 body.
func AuthnMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			u, err := auth.Resolve(ctx, bearerToken(r), time.Now())
			if err != nil {
				slogx.FromContext(ctx).Info("request rejected", "err", err)
				httpx.ErrUnauthenticated.WriteError(w)
				return
			}

			ctx = httpx.WithUser(ctx, u.ID, u.FullName)
			ctx = slogx.WithContext(ctx, slogx.FromContext(ctx).With("user_id", u.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
