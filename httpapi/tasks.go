package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/taskbox/taskbox/store"
)

type (
	taskBody struct {
		ID          int64      `json:"id"`
		Title       string     `json:"title"`
		Description string     `json:"description,omitempty"`
		Priority    int64      `json:"priority,omitempty"`
		DueDate     *time.Time `json:"due_date,omitempty"`
		Completed   bool       `json:"completed"`
		UserID      int64      `json:"user_id"`
		ProjectID   *int64     `json:"project_id,omitempty"`
		CategoryID  *int64     `json:"category_id,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}

	createTaskRequest struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Priority    json.RawMessage `json:"priority"`
		DueDate     string          `json:"due_date"`
		ProjectID   *int64          `json:"project_id"`
		CategoryID  *int64          `json:"category_id"`
	}

	updateTaskRequest struct {
		ID        int64 `json:"id"`
		Completed *bool `json:"completed"`
	}
)

var priorityNames = map[string]int64{
	"low":    1,
	"medium": 2,
	"high":   3,
}

// parsePriority accepts the two shapes clients send: the names low,
// medium and high, or the numbers 1 to 3. Zero means unset.
func parsePriority(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, true
	}
	var name string
	if json.Unmarshal(raw, &name) == nil {
		p, ok := priorityNames[strings.ToLower(name)]
		return p, ok
	}
	var num int64
	if json.Unmarshal(raw, &num) == nil {
		return num, num >= 1 && num <= 3
	}
	return 0, false
}

func toTaskBody(t store.Task) taskBody {
	return taskBody{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		UserID:      t.UserID,
		ProjectID:   t.ProjectID,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
	}
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	tasks, err := a.store.TasksByUser(r.Context(), claims.UserID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	out := make([]taskBody, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskBody(t))
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req createTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title required")
		return
	}
	priority, ok := parsePriority(req.Priority)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid priority")
		return
	}
	var due *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date")
			return
		}
		due = &parsed
	}
	task, err := a.store.CreateTask(r.Context(), store.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     due,
		UserID:      claims.UserID,
		ProjectID:   req.ProjectID,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTaskBody(task))
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req updateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == 0 || req.Completed == nil {
		respondError(w, http.StatusBadRequest, "invalid data")
		return
	}
	if !a.checkOwner(w, r, claims, func(ctx context.Context) (int64, error) {
		t, err := a.store.TaskByID(ctx, req.ID)
		return t.UserID, err
	}) {
		return
	}
	task, err := a.store.SetTaskCompleted(r.Context(), req.ID, *req.Completed)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTaskBody(task))
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.authenticate(w, r)
	if !ok {
		return
	}
	var req deleteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == 0 {
		respondError(w, http.StatusBadRequest, "task id is required")
		return
	}
	if !a.checkOwner(w, r, claims, func(ctx context.Context) (int64, error) {
		t, err := a.store.TaskByID(ctx, req.ID)
		return t.UserID, err
	}) {
		return
	}
	err := a.store.DeleteTask(r.Context(), req.ID)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "task deleted"})
}
