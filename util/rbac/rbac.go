// Package rbac is the access guard: a pure predicate over the role token
// supplied with each request. It holds no state and never invents roles.
package rbac

import (
	"strings"

	"librarydesk/apperr"
)

// Check validates the supplied role token against the allowed set.
// Comparison is case-insensitive. An empty token is an auth-missing
// failure, a token outside the set is forbidden.
func Check(allowed []string, supplied string) error {
	role := strings.ToLower(strings.TrimSpace(supplied))
	if role == "" {
		return apperr.New(apperr.Unauthorized, "role token missing")
	}
	for _, a := range allowed {
		if role == strings.ToLower(a) {
			return nil
		}
	}
	return apperr.New(apperr.Forbidden, "insufficient role")
}
