package testutil

import (
	"context"
	"os"

	"github.com/taskbox/taskbox/store"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireStore opens a throwaway store under a temp directory and
// returns it together with its cleanup function.
func AcquireStore(ctx context.Context, t TestLog) (*store.Store, func()) {
	dir, err := os.MkdirTemp("", "taskbox-tests")
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.Open(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	return st, func() {
		err := st.Close()
		if err != nil {
			t.Log("unable to close store", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}
