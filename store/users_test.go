package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/taskbox/taskbox/internal/testutil"
	"github.com/taskbox/taskbox/store"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	st, cleanup := testutil.AcquireStore(ctx, t)
	defer cleanup()

	u, err := st.CreateUser(ctx, "Ann", "ann@x.com", "hash-1")
	if err != nil {
		t.Fatal(err)
	}
	if u.ID == 0 {
		t.Fatal("created user should have an id")
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("created user should have a creation timestamp")
	}

	_, err = st.CreateUser(ctx, "Other Ann", "ann@x.com", "hash-2")
	var dup store.DuplicateEmail
	if !errors.As(err, &dup) {
		t.Fatalf("duplicate email should be refused, got %v", err)
	}
}

func TestUserByEmail(t *testing.T) {
	ctx := context.Background()
	st, cleanup := testutil.AcquireStore(ctx, t)
	defer cleanup()

	created, err := st.CreateUser(ctx, "Bob", "bob@x.com", "hash")
	if err != nil {
		t.Fatal(err)
	}
	found, err := st.UserByEmail(ctx, "bob@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != created.ID || found.PasswordHash != "hash" {
		t.Fatalf("lookup returned the wrong user: %+v", found)
	}

	// emails are matched exactly as stored
	_, err = st.UserByEmail(ctx, "BOB@x.com")
	var missing store.UserNotFound
	if !errors.As(err, &missing) {
		t.Fatalf("case variant should not match, got %v", err)
	}
}
