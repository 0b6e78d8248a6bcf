package httpapi

import (
	"net/http"
)

// The real UI is rendered client side. These pages exist so the gate
// has navigations to protect and somewhere to redirect rejected ones.

func servePage(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (a *API) dashboardPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, `<!doctype html><title>taskbox</title><h1>Dashboard</h1>`)
}

func (a *API) loginPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, `<!doctype html><title>taskbox</title><h1>Log in</h1>`)
}

func (a *API) signupPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, `<!doctype html><title>taskbox</title><h1>Sign up</h1>`)
}
