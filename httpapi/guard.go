package httpapi

import (
	"context"
	"net/http"

	"github.com/taskbox/taskbox/auth"
)

// authenticate verifies the token cookie and writes the 401 itself when
// the request carries no usable identity. Handlers never learn why the
// token was refused, only that there is no identity to act on.
func (a *API) authenticate(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	cookie, err := r.Cookie(auth.TokenCookie)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return auth.Claims{}, false
	}
	claims, ok := a.codec.Verify(cookie.Value)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return auth.Claims{}, false
	}
	return claims, true
}

// checkOwner is the ownership guard shared by every mutating resource
// handler: load the row, compare its owner against the already verified
// claims. load returns the owning user of the target row, or a store
// error when the row does not exist. A 403 here deliberately differs
// from the 404 of a missing row: the caller learns the id exists but is
// not theirs.
func (a *API) checkOwner(w http.ResponseWriter, r *http.Request, claims auth.Claims, load func(ctx context.Context) (int64, error)) bool {
	owner, err := load(r.Context())
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return false
	}
	if owner != claims.UserID {
		respondError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}
