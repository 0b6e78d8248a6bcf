package httpapi

import (
	"context"
	"net/http"

	"github.com/taskbox/taskbox/store"
)

type (
	categoryBody struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		UserID int64  `json:"user_id"`
	}

	createCategoryRequest struct {
		Name string `json:"name"`
	}

	updateCategoryRequest struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
)

func toCategoryBody(c store.Category) categoryBody {
	return categoryBody{ID: c.ID, Name: c.Name, UserID: c.UserID}
}

// Categories are owned rows like projects and tasks, and the same guard
// applies to every mutation.

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	categories, err := a.store.CategoriesByUser(r.Context(), claims.UserID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	out := make([]categoryBody, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryBody(c))
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) createCategory(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req createCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "category name is required")
		return
	}
	category, err := a.store.CreateCategory(r.Context(), claims.UserID, req.Name)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCategoryBody(category))
}

func (a *API) updateCategory(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == 0 || req.Name == "" {
		respondError(w, http.StatusBadRequest, "category id and name are required")
		return
	}
	if !a.checkOwner(w, r, claims, func(ctx context.Context) (int64, error) {
		c, err := a.store.CategoryByID(ctx, req.ID)
		return c.UserID, err
	}) {
		return
	}
	category, err := a.store.RenameCategory(r.Context(), req.ID, req.Name)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCategoryBody(category))
}

func (a *API) deleteCategory(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req deleteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == 0 {
		respondError(w, http.StatusBadRequest, "category id is required")
		return
	}
	if !a.checkOwner(w, r, claims, func(ctx context.Context) (int64, error) {
		c, err := a.store.CategoryByID(ctx, req.ID)
		return c.UserID, err
	}) {
		return
	}
	err := a.store.DeleteCategory(r.Context(), req.ID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "category deleted"})
}
