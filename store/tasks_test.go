package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskbox/taskbox/internal/testutil"
	"github.com/taskbox/taskbox/store"
)

func seedUser(ctx context.Context, t *testing.T, st *store.Store, email string) store.User {
	u, err := st.CreateUser(ctx, "user", email, "hash")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	st, cleanup := testutil.AcquireStore(ctx, t)
	defer cleanup()
	owner := seedUser(ctx, t, st, "owner@x.com")

	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	created, err := st.CreateTask(ctx, store.Task{
		Title:       "write report",
		Description: "quarterly numbers",
		Priority:    2,
		DueDate:     &due,
		UserID:      owner.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := st.TaskByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Title != "write report" || loaded.Priority != 2 || loaded.Completed {
		t.Fatalf("task did not round trip: %+v", loaded)
	}
	if loaded.DueDate == nil || !loaded.DueDate.Equal(due) {
		t.Fatalf("due date did not round trip: %v", loaded.DueDate)
	}

	updated, err := st.SetTaskCompleted(ctx, created.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.Completed {
		t.Fatal("completion flag should flip")
	}

	err = st.DeleteTask(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	err = st.DeleteTask(ctx, created.ID)
	var missing store.NotFound
	if !errors.As(err, &missing) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestTasksByUserIsScoped(t *testing.T) {
	ctx := context.Background()
	st, cleanup := testutil.AcquireStore(ctx, t)
	defer cleanup()
	ann := seedUser(ctx, t, st, "ann@x.com")
	bob := seedUser(ctx, t, st, "bob@x.com")

	_, err := st.CreateTask(ctx, store.Task{Title: "ann-1", UserID: ann.ID})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.CreateTask(ctx, store.Task{Title: "bob-1", UserID: bob.ID})
	if err != nil {
		t.Fatal(err)
	}

	tasks, err := st.TasksByUser(ctx, ann.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Title != "ann-1" {
		t.Fatalf("listing leaked across users: %+v", tasks)
	}
}

func TestDashboardCounts(t *testing.T) {
	ctx := context.Background()
	st, cleanup := testutil.AcquireStore(ctx, t)
	defer cleanup()
	owner := seedUser(ctx, t, st, "owner@x.com")
	other := seedUser(ctx, t, st, "other@x.com")

	for i := 0; i < 3; i++ {
		_, err := st.CreateTask(ctx, store.Task{Title: "todo", UserID: owner.ID})
		if err != nil {
			t.Fatal(err)
		}
	}
	done, err := st.CreateTask(ctx, store.Task{Title: "done", UserID: owner.ID})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.SetTaskCompleted(ctx, done.ID, true); err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateProject(ctx, owner.ID, "house", ""); err != nil {
		t.Fatal(err)
	}
	// noise from another user must not show up in the counts
	if _, err := st.CreateTask(ctx, store.Task{Title: "noise", UserID: other.ID}); err != nil {
		t.Fatal(err)
	}

	counts, err := st.Dashboard(ctx, owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := store.DashboardCounts{TotalTasks: 4, CompletedTasks: 1, PendingTasks: 3, TotalProjects: 1}
	if counts != want {
		t.Fatalf("dashboard counts mismatch: got %+v want %+v", counts, want)
	}
}
