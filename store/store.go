// Package store keeps every record of the task manager inside a single
// sqlite database: users, projects, categories and tasks.
//
// Ownership is a column, not a constraint: every row except users carries
// a user_id and nothing at this layer stops a caller from touching a row
// that belongs to someone else. The access checks live above the store,
// inside the http handlers.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	_ "github.com/mattn/go-sqlite3"
)

type (
	Store struct {
		db *sql.DB
	}
)

func openDatabase(ctx context.Context, dir string) (*sql.DB, error) {
	file := filepath.Join(dir, "taskbox.db")
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("unable to create directory %v to hold the store, cause %w", dir, err)
	}
	connstr := fmt.Sprintf("file:%v?_journal=wal&_fk=1&mode=rwc", file)
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %w", file, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping store at %v, cause %w", file, err)
	}
	return conn, nil
}

// Open loads (creating it if needed) the task store kept under dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	conn, err := openDatabase(ctx, dir)
	if err != nil {
		return nil, err
	}
	s := &Store{db: conn}
	err = s.init(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init store at %v, cause %w", dir, err)
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	for _, cmd := range []string{
		`create table if not exists users(
			id integer not null primary key autoincrement,
			name text not null,
			email text not null unique,
			email_hash64 integer not null,
			password_hash text not null,
			created_at timestamp not null default current_timestamp
		)`,
		`create index if not exists idx_users_email_hash64
			on users(email_hash64)`,
		`create table if not exists projects(
			id integer not null primary key autoincrement,
			name text not null,
			description text,
			user_id integer not null,
			created_at timestamp not null default current_timestamp,
			foreign key (user_id) references users(id)
		)`,
		`create table if not exists categories(
			id integer not null primary key autoincrement,
			name text not null,
			user_id integer not null,
			unique (user_id, name),
			foreign key (user_id) references users(id)
		)`,
		`create table if not exists tasks(
			id integer not null primary key autoincrement,
			title text not null,
			description text,
			priority integer,
			due_date timestamp,
			completed integer not null default 0,
			user_id integer not null,
			project_id integer,
			category_id integer,
			created_at timestamp not null default current_timestamp,
			foreign key (user_id) references users(id),
			foreign key (project_id) references projects(id),
			foreign key (category_id) references categories(id)
		)`,
	} {
		_, err := s.db.ExecContext(ctx, cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

// emailHash mirrors the unique email column with a cheap 64bit hash so
// lookups hit a small integer index instead of comparing text.
func emailHash(email string) int64 {
	return int64(xxhash.Sum64String(email))
}

func (s *Store) Close() error {
	return s.db.Close()
}
