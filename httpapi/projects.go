package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/taskbox/taskbox/store"
)

type (
	projectBody struct {
		ID          int64     `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		UserID      int64     `json:"user_id"`
		CreatedAt   time.Time `json:"created_at"`
	}

	createProjectRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	updateProjectRequest struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	deleteRequest struct {
		ID int64 `json:"id"`
	}
)

func toProjectBody(p store.Project) projectBody {
	return projectBody{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
	}
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	projects, err := a.store.ProjectsByUser(r.Context(), claims.UserID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	out := make([]projectBody, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectBody(p))
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req createProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "project name is required")
		return
	}
	// ownership comes from the verified claims, the body has no say
	project, err := a.store.CreateProject(r.Context(), claims.UserID, req.Name, req.Description)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toProjectBody(project))
}

func (a *API) updateProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req updateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == 0 {
		respondError(w, http.StatusBadRequest, "project id is required")
		return
	}
	if !a.checkOwner(w, r, claims, func(ctx context.Context) (int64, error) {
		p, err := a.store.ProjectByID(ctx, req.ID)
		return p.UserID, err
	}) {
		return
	}
	project, err := a.store.UpdateProject(r.Context(), req.ID, req.Name, req.Description)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProjectBody(project))
}

func (a *API) deleteProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req deleteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == 0 {
		respondError(w, http.StatusBadRequest, "project id is required")
		return
	}
	if !a.checkOwner(w, r, claims, func(ctx context.Context) (int64, error) {
		p, err := a.store.ProjectByID(ctx, req.ID)
		return p.UserID, err
	}) {
		return
	}
	err := a.store.DeleteProject(r.Context(), req.ID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "project deleted"})
}
