package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/orderchat-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// SessionID resolves the chat session for the request. A missing header
// mints a fresh id; the response always echoes the id so the client can
// carry it forward.
func SessionID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
