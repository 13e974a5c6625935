package httpx

import (
	"errors"
	"net/http"
	"strconv"

	domainauth "github.com/fixnest/marketplace-api/internal/domain/auth"
)

// requireSession pulls the authenticated principal out of the request
// context. Handlers behind RequireAuth always find one; the guard covers
// misrouted handlers.
func requireSession(w http.ResponseWriter, r *http.Request) (*domainauth.Session, bool) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return nil, false
	}
	return session, true
}

// pageParams reads limit/offset query parameters. Repositories clamp the
// values; here we only parse.
func pageParams(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
