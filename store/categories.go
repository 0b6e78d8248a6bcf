package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type (
	Category struct {
		ID     int64
		Name   string
		UserID int64
	}
)

// CreateCategory adds a category scoped to a single user. The same name
// can exist for different users but not twice for the same one.
func (s *Store) CreateCategory(ctx context.Context, userID int64, name string) (Category, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `select count(*) from categories where user_id = ? and name = ?`,
		userID, name).Scan(&count)
	if err != nil {
		return Category{}, fmt.Errorf("unable to check for existing category, cause %w", err)
	}
	if count > 0 {
		return Category{}, DuplicateCategory{Name: name, UserID: userID}
	}
	c := Category{Name: name, UserID: userID}
	err = s.db.QueryRowContext(ctx, `insert into categories(name, user_id) values (?, ?) returning id`,
		name, userID).Scan(&c.ID)
	if err != nil {
		return Category{}, fmt.Errorf("unable to insert category, cause %w", err)
	}
	return c, nil
}

func (s *Store) CategoriesByUser(ctx context.Context, userID int64) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `select id, name, user_id from categories
		where user_id = ? order by name asc`, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list categories, cause %w", err)
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		err = rows.Scan(&c.ID, &c.Name, &c.UserID)
		if err != nil {
			return nil, fmt.Errorf("unable to scan category row, cause %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) CategoryByID(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := s.db.QueryRowContext(ctx, `select id, name, user_id from categories where id = ?`,
		id).Scan(&c.ID, &c.Name, &c.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, NotFound{Kind: "category", ID: id}
	} else if err != nil {
		return Category{}, fmt.Errorf("unable to load category %v, cause %w", id, err)
	}
	return c, nil
}

func (s *Store) RenameCategory(ctx context.Context, id int64, name string) (Category, error) {
	res, err := s.db.ExecContext(ctx, `update categories set name = ? where id = ?`, name, id)
	if err != nil {
		return Category{}, fmt.Errorf("unable to rename category %v, cause %w", id, err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return Category{}, fmt.Errorf("unable to rename category %v, cause %w", id, err)
	}
	if changed == 0 {
		return Category{}, NotFound{Kind: "category", ID: id}
	}
	return s.CategoryByID(ctx, id)
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from categories where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete category %v, cause %w", id, err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to delete category %v, cause %w", id, err)
	}
	if changed == 0 {
		return NotFound{Kind: "category", ID: id}
	}
	return nil
}
