package httpx

import (
	"net/http"
	"strings"
)

// MethodOverrideParam is the query or form field carrying the real method.
const MethodOverrideParam = "_method"

var overridableMethods = map[string]bool{
	http.MethodDelete: true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
}

// MethodOverrideMiddleware lets HTML forms issue DELETE, PUT and PATCH by
// POSTing with _method in the query string or an urlencoded body. Other
// methods and values pass through untouched. It must run before routing.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.URL.Query().Get(MethodOverrideParam)
			if override == "" && isForm(r) {
				override = r.PostFormValue(MethodOverrideParam)
			}
			if m := strings.ToUpper(override); overridableMethods[m] {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
