package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// headerTraceID carries the request trace identifier on the wire. Callers
// may supply their own; the response always echoes the one in effect.
const headerTraceID = "X-Trace-ID"

// withTraceID tags every request with a trace identifier and binds a child
// logger carrying it to the request context, so all log lines for one
// request can be correlated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerTraceID)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(headerTraceID, traceID)
		next.ServeHTTP(w, r)
	})
}
