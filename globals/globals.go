package globals

import (
	"context"
)

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

var Ctx = context.Background()
