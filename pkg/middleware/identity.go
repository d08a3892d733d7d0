package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/configuration"
)

// CallerIdentity copies the caller id header set by the upstream auth layer
// into the request context. Absence is not rejected here; handlers that need
// the caller fail with a 400 when composables.UseCaller errors.
func CallerIdentity() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID := strings.TrimSpace(r.Header.Get(conf.CallerIDHeader))
			if callerID != "" {
				r = r.WithContext(composables.WithCaller(r.Context(), callerID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
