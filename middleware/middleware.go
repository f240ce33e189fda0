package middleware

import (
	"context"
	"net/http"

	"voyago/globals"

	"github.com/julienschmidt/httprouter"
)

// WithSessionID copies the X-Session-ID header into the request context so
// downstream logging can correlate actions of one planning run.
func WithSessionID(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if sid := r.Header.Get("X-Session-ID"); sid != "" {
			ctx := context.WithValue(r.Context(), globals.SessionIDKey, sid)
			r = r.WithContext(ctx)
		}
		next(w, r, ps)
	}
}
