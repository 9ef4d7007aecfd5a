package tools

import (
	"errors"
	"testing"

	"tasksaathi/backend/types"
)

func TestResolveTaskRef(t *testing.T) {
	tasks := []types.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}

	if id, err := ResolveTaskRef("first", tasks); err != nil || id != "t1" {
		t.Fatalf("first = %q, %v", id, err)
	}
	if id, err := ResolveTaskRef("last", tasks); err != nil || id != "t3" {
		t.Fatalf("last = %q, %v", id, err)
	}
	// Unrecognized references fall back to first, they are not an error.
	if id, err := ResolveTaskRef("third", tasks); err != nil || id != "t1" {
		t.Fatalf("fallback = %q, %v", id, err)
	}
}

func TestResolveTaskRefEmpty(t *testing.T) {
	if _, err := ResolveTaskRef("first", nil); !errors.Is(err, ErrNoTasks) {
		t.Fatalf("err = %v, want ErrNoTasks", err)
	}
}
