package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type (
	User struct {
		ID           int64
		Name         string
		Email        string
		PasswordHash string
		CreatedAt    time.Time
	}
)

// CreateUser registers a new user with an already hashed password.
// Emails are unique and compared exactly as stored.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (User, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `select count(*) from users where email_hash64 = ? and email = ?`,
		emailHash(email), email).Scan(&count)
	if err != nil {
		return User{}, fmt.Errorf("unable to check for existing user, cause %w", err)
	}
	if count > 0 {
		return User{}, DuplicateEmail{Email: email}
	}
	var u User
	err = s.db.QueryRowContext(ctx, `insert into users(name, email, email_hash64, password_hash) values (?, ?, ?, ?)
		returning id, created_at`,
		name, email, emailHash(email), passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("unable to insert user, cause %w", err)
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	return u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `select id, name, email, password_hash, created_at from users
		where email_hash64 = ? and email = ?`,
		emailHash(email), email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, UserNotFound{Email: email}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user by email, cause %w", err)
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `select id, name, email, password_hash, created_at from users where id = ?`,
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, NotFound{Kind: "user", ID: id}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user %v, cause %w", id, err)
	}
	return u, nil
}
