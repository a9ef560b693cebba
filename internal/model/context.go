package model

import "context"

// ContextManager stores and reads the request ID carried through a call.
type ContextManager interface {
	SetRequestIDToContext(ctx context.Context, requestID string) context.Context
	GetRequestIDFromContext(ctx context.Context) (string, bool)
}
