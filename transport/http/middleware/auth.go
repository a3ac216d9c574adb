package middleware

import (
	"net/http"
	"strings"

	"github.com/alexfurtado22/djangobnb/shared/constant"
)

const bearerPrefix = "Bearer "

// TokenFromRequest extracts the bearer token from the Authorization header.
// The token is never verified here; the remote backend is the only party
// that can, so handlers pass it along as-is.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get(constant.RequestHeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return constant.Empty
}
