package auth

import (
	"crypto/subtle"
	"net/http"

	"attendance-dashboard/internal/lib/api/response"
)

const realm = "Dashboard Smoke Test"

// BasicAuth guards a route with HTTP basic auth. An empty username leaves the route open.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if username == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !equal(user, username) || !equal(pass, password) {
				requireAuth(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func requireAuth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
	response.JSON(w, r, http.StatusUnauthorized, response.Error("Unauthorized"))
}
