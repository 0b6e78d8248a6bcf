package httpapi

import (
	"net/http"
)

type (
	dashboardBody struct {
		TotalTasks     int64 `json:"total_tasks"`
		CompletedTasks int64 `json:"completed_tasks"`
		PendingTasks   int64 `json:"pending_tasks"`
		TotalProjects  int64 `json:"total_projects"`
	}
)

func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	counts, err := a.store.Dashboard(r.Context(), claims.UserID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboardBody{
		TotalTasks:     counts.TotalTasks,
		CompletedTasks: counts.CompletedTasks,
		PendingTasks:   counts.PendingTasks,
		TotalProjects:  counts.TotalProjects,
	})
}
