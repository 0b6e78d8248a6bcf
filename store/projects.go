package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type (
	Project struct {
		ID          int64
		Name        string
		Description string
		UserID      int64
		CreatedAt   time.Time
	}
)

func (s *Store) CreateProject(ctx context.Context, userID int64, name, description string) (Project, error) {
	p := Project{Name: name, Description: description, UserID: userID}
	err := s.db.QueryRowContext(ctx, `insert into projects(name, description, user_id) values (?, ?, ?)
		returning id, created_at`,
		name, description, userID).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return Project{}, fmt.Errorf("unable to insert project, cause %w", err)
	}
	return p, nil
}

func (s *Store) ProjectsByUser(ctx context.Context, userID int64) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, `select id, name, description, user_id, created_at from projects
		where user_id = ? order by id asc`, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list projects, cause %w", err)
	}
	defer rows.Close()
	var out []Project
	for rows.Next() {
		var p Project
		var desc sql.NullString
		err = rows.Scan(&p.ID, &p.Name, &desc, &p.UserID, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unable to scan project row, cause %w", err)
		}
		p.Description = desc.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) ProjectByID(ctx context.Context, id int64) (Project, error) {
	var p Project
	var desc sql.NullString
	err := s.db.QueryRowContext(ctx, `select id, name, description, user_id, created_at from projects where id = ?`,
		id).Scan(&p.ID, &p.Name, &desc, &p.UserID, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, NotFound{Kind: "project", ID: id}
	} else if err != nil {
		return Project{}, fmt.Errorf("unable to load project %v, cause %w", id, err)
	}
	p.Description = desc.String
	return p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id int64, name, description string) (Project, error) {
	res, err := s.db.ExecContext(ctx, `update projects set name = ?, description = ? where id = ?`,
		name, description, id)
	if err != nil {
		return Project{}, fmt.Errorf("unable to update project %v, cause %w", id, err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return Project{}, fmt.Errorf("unable to update project %v, cause %w", id, err)
	}
	if changed == 0 {
		return Project{}, NotFound{Kind: "project", ID: id}
	}
	return s.ProjectByID(ctx, id)
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from projects where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete project %v, cause %w", id, err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to delete project %v, cause %w", id, err)
	}
	if changed == 0 {
		return NotFound{Kind: "project", ID: id}
	}
	return nil
}
