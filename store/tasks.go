package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type (
	Task struct {
		ID          int64
		Title       string
		Description string
		// Priority is 1 (low) to 3 (high), 0 when unset.
		Priority   int64
		DueDate    *time.Time
		Completed  bool
		UserID     int64
		ProjectID  *int64
		CategoryID *int64
		CreatedAt  time.Time
	}

	DashboardCounts struct {
		TotalTasks     int64
		CompletedTasks int64
		PendingTasks   int64
		TotalProjects  int64
	}
)

func (s *Store) CreateTask(ctx context.Context, t Task) (Task, error) {
	var priority sql.NullInt64
	if t.Priority != 0 {
		priority = sql.NullInt64{Int64: t.Priority, Valid: true}
	}
	err := s.db.QueryRowContext(ctx, `insert into tasks(title, description, priority, due_date, completed, user_id, project_id, category_id)
		values (?, ?, ?, ?, ?, ?, ?, ?) returning id, created_at`,
		t.Title, t.Description, priority, t.DueDate, t.Completed, t.UserID, t.ProjectID, t.CategoryID).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("unable to insert task, cause %w", err)
	}
	return t, nil
}

func (s *Store) TasksByUser(ctx context.Context, userID int64) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `select id, title, description, priority, due_date, completed, user_id, project_id, category_id, created_at
		from tasks where user_id = ? order by id asc`, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list tasks, cause %w", err)
	}
	defer rows.Close()
	var out []Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("unable to scan task row, cause %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) TaskByID(ctx context.Context, id int64) (Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx, `select id, title, description, priority, due_date, completed, user_id, project_id, category_id, created_at
		from tasks where id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, NotFound{Kind: "task", ID: id}
	} else if err != nil {
		return Task{}, fmt.Errorf("unable to load task %v, cause %w", id, err)
	}
	return t, nil
}

// SetTaskCompleted flips the completion flag of a task, the only field
// the dashboard toggles after creation.
func (s *Store) SetTaskCompleted(ctx context.Context, id int64, completed bool) (Task, error) {
	res, err := s.db.ExecContext(ctx, `update tasks set completed = ? where id = ?`, completed, id)
	if err != nil {
		return Task{}, fmt.Errorf("unable to update task %v, cause %w", id, err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return Task{}, fmt.Errorf("unable to update task %v, cause %w", id, err)
	}
	if changed == 0 {
		return Task{}, NotFound{Kind: "task", ID: id}
	}
	return s.TaskByID(ctx, id)
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from tasks where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete task %v, cause %w", id, err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to delete task %v, cause %w", id, err)
	}
	if changed == 0 {
		return NotFound{Kind: "task", ID: id}
	}
	return nil
}

func (s *Store) Dashboard(ctx context.Context, userID int64) (DashboardCounts, error) {
	var d DashboardCounts
	err := s.db.QueryRowContext(ctx, `select count(*) from tasks where user_id = ?`, userID).Scan(&d.TotalTasks)
	if err != nil {
		return DashboardCounts{}, fmt.Errorf("unable to count tasks, cause %w", err)
	}
	err = s.db.QueryRowContext(ctx, `select count(*) from tasks where user_id = ? and completed = 1`, userID).Scan(&d.CompletedTasks)
	if err != nil {
		return DashboardCounts{}, fmt.Errorf("unable to count completed tasks, cause %w", err)
	}
	d.PendingTasks = d.TotalTasks - d.CompletedTasks
	err = s.db.QueryRowContext(ctx, `select count(*) from projects where user_id = ?`, userID).Scan(&d.TotalProjects)
	if err != nil {
		return DashboardCounts{}, fmt.Errorf("unable to count projects, cause %w", err)
	}
	return d, nil
}

func scanTask(scan func(...any) error) (Task, error) {
	var t Task
	var desc sql.NullString
	var priority sql.NullInt64
	var due sql.NullTime
	var projectID, categoryID sql.NullInt64
	err := scan(&t.ID, &t.Title, &desc, &priority, &due, &t.Completed, &t.UserID, &projectID, &categoryID, &t.CreatedAt)
	if err != nil {
		return Task{}, err
	}
	t.Description = desc.String
	t.Priority = priority.Int64
	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}
	if projectID.Valid {
		v := projectID.Int64
		t.ProjectID = &v
	}
	if categoryID.Valid {
		v := categoryID.Int64
		t.CategoryID = &v
	}
	return t, nil
}
