// Package httpapi exposes the task manager over HTTP: the auth
// endpoints, the owned-resource CRUD and the dashboard summary, plus
// the handful of page routes the browser navigates between.
package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/taskbox/taskbox/auth"
	"github.com/taskbox/taskbox/auth/gate"
	"github.com/taskbox/taskbox/store"
)

type (
	API struct {
		store *store.Store
		codec *auth.Codec
	}
)

func New(st *store.Store, codec *auth.Codec) *API {
	return &API{store: st, codec: codec}
}

// Handler wires every route. Page routes go through the gate; the API
// routes do not, each handler re-verifies the cookie on its own.
func (a *API) Handler(g *gate.Gate) http.Handler {
	router := httprouter.New()

	router.HandlerFunc("POST", "/api/auth/signup", a.signup)
	router.HandlerFunc("POST", "/api/auth/login", a.login)

	router.HandlerFunc("GET", "/api/projects", a.listProjects)
	router.HandlerFunc("POST", "/api/projects", a.createProject)
	router.HandlerFunc("PUT", "/api/projects", a.updateProject)
	router.HandlerFunc("DELETE", "/api/projects", a.deleteProject)

	router.HandlerFunc("GET", "/api/tasks", a.listTasks)
	router.HandlerFunc("POST", "/api/tasks", a.createTask)
	router.HandlerFunc("PUT", "/api/tasks", a.updateTask)
	router.HandlerFunc("DELETE", "/api/tasks", a.deleteTask)

	router.HandlerFunc("GET", "/api/categories", a.listCategories)
	router.HandlerFunc("POST", "/api/categories", a.createCategory)
	router.HandlerFunc("PUT", "/api/categories", a.updateCategory)
	router.HandlerFunc("DELETE", "/api/categories", a.deleteCategory)

	router.HandlerFunc("GET", "/api/dashboard", a.dashboard)

	router.Handler("GET", "/dashboard", g.Protect(http.HandlerFunc(a.dashboardPage)))
	router.HandlerFunc("GET", gate.LoginPath, a.loginPage)
	router.HandlerFunc("GET", "/auth/signup", a.signupPage)

	return router
}
