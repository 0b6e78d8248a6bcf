// Package gate filters page navigations: anything behind the gate needs
// a valid token cookie, everything else is bounced to the login page.
package gate

import (
	"net/http"
	"strings"

	"github.com/taskbox/taskbox/auth"
	"github.com/taskbox/taskbox/internal/logutil"
)

type (
	Gate struct {
		codec *auth.Codec
		cache *auth.ClaimsCache
	}
)

// LoginPath is where rejected navigations are sent.
const LoginPath = "/auth/login"

func New(codec *auth.Codec, cache *auth.ClaimsCache) *Gate {
	return &Gate{codec: codec, cache: cache}
}

// Protect wraps a page handler behind the token cookie check. Login and
// signup pages stay reachable without a token, otherwise a fresh user
// with a stale cookie could never sign up again.
//
// The gate does not inject claims into the request context. Handlers
// that need the identity verify the cookie themselves, so a request
// that somehow skips the gate still hits a closed door.
func (g *Gate) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if exemptPath(r.URL.Path) {
			sensitive.ServeHTTP(w, r)
			return
		}
		cookie, err := r.Cookie(auth.TokenCookie)
		if err != nil {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		if !g.checkToken(r, cookie.Value) {
			// drop the bad cookie or the login page itself would
			// bounce the browser right back here
			http.SetCookie(w, auth.ExpiredTokenCookie())
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

func (g *Gate) checkToken(r *http.Request, token string) bool {
	if g.cache != nil {
		if _, found := g.cache.Get(token); found {
			return true
		}
	}
	claims, verdict := g.codec.Inspect(token)
	if verdict != auth.VerdictValid {
		log := logutil.GetOrDefault(r.Context())
		log.Warn().Stringer("verdict", verdict).Str("path", r.URL.Path).Msg("Refusing token cookie")
		return false
	}
	if g.cache != nil {
		g.cache.Put(token, claims)
	}
	return true
}

func exemptPath(path string) bool {
	return strings.HasPrefix(path, "/auth/login") ||
		strings.HasPrefix(path, "/auth/signup")
}
