package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyHandle ctxKey = "handle"
)

// UserIDFromCtx returns the resolved account id, or "" when the request
// did not pass through the authentication middleware.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// WithUser stores the resolved identity on the context for downstream handlers.
func WithUser(ctx context.Context, userID, handle string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	return context.WithValue(ctx, CtxKeyHandle, handle)
}
