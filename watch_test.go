package versa

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/versa-format/go-versa/ir"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.versa")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan *ir.Node, 8)
	err := Watch(ctx, path, func(n *ir.Node, err error) {
		if err == nil {
			ch <- n
		}
	}, WatchDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	waitFor := func(want int) {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case n := <-ch:
				if n.GetInt("a") == want {
					return
				}
			case <-deadline:
				t.Fatalf("no update with a = %d", want)
			}
		}
	}

	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(1)

	if err := os.WriteFile(path, []byte("a = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(2)
}

func TestWatchBadDir(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := Watch(ctx, filepath.Join(t.TempDir(), "nope", "f.versa"), func(*ir.Node, error) {})
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
