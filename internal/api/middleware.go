package api

import (
	"net/http"
	"strings"

	"github.com/chronos-capsule/chronos/internal/handler"
	"github.com/chronos-capsule/chronos/internal/model"
)

// UserIDHeader is set by the session layer in front of this service.
const UserIDHeader = "X-User-ID"

// RequireUser rejects requests without a caller id and stores it in the
// request context for the handlers.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handler.WriteError(w, http.StatusUnauthorized, model.CodeUnauthorized, "missing "+UserIDHeader+" header")
			return
		}
		next.ServeHTTP(w, r.WithContext(handler.WithUserID(r.Context(), userID)))
	})
}
