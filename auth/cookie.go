package auth

import "net/http"

// TokenCookie is the cookie that carries the signed token.
const TokenCookie = "token"

// NewTokenCookie builds the cookie set on a successful login.
func NewTokenCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredTokenCookie builds a cookie that tells the client to drop the
// token, used when the gate finds a cookie that no longer verifies.
func ExpiredTokenCookie() *http.Cookie {
	c := NewTokenCookie("")
	c.MaxAge = -1
	return c
}
