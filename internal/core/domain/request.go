package domain

import "context"

type requestIDKey struct{}

// ContextWithRequestID tags ctx with the id of the inbound request so that
// generation events can be correlated with the access log.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
