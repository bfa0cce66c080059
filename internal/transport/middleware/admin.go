package middleware

import (
	"net/http"

	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests whose context user does not carry the admin
// role. Mounted in front of the /admin routes; the services repeat the check
// for callers that bypass HTTP.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
