package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole the caller's token must carry one of the provided roles.
// Must run after AuthnMiddleware.
func RequireAnyRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := ClaimsFromContext(r.Context()); ok && claims.HasRole(roles...) {
				next.ServeHTTP(w, r)
				return
			}
			writeForbidden(w, roles...)
		})
	}
}

func writeForbidden(w http.ResponseWriter, roles ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", error_description="requires role `+strings.Join(roles, " or ")+`"`)
	WriteMessage(w, http.StatusForbidden, "Forbidden")
}

// Forbidden writes the same 403 response RequireAnyRole produces, for
// handlers that make finer ownership checks themselves.
func Forbidden(w http.ResponseWriter) {
	writeForbidden(w)
}
