package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatcher_DeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	writeFile(t, path, "a: 1\n")

	w, err := New(path, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	writeFile(t, path, "a: 2\n")

	select {
	case reload := <-w.Reloads():
		if reload.Name != "doc.yaml" {
			t.Errorf("reload name = %q, want doc.yaml", reload.Name)
		}
		if reload.Text != "a: 2\n" {
			t.Errorf("reload text = %q, want updated content", reload.Text)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	writeFile(t, path, "a: 1\n")

	w, err := New(path, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.yaml"), "b: 2\n")

	select {
	case reload := <-w.Reloads():
		t.Errorf("unexpected reload for sibling file: %+v", reload)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DampsBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	writeFile(t, path, "a: 0\n")

	// One event per ten seconds: only the first write of the burst passes.
	w, err := New(path, 0.1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	writeFile(t, path, "a: 1\n")

	select {
	case <-w.Reloads():
	case <-time.After(5 * time.Second):
		t.Fatal("first write should pass the limiter")
	}

	writeFile(t, path, "a: 2\n")
	writeFile(t, path, "a: 3\n")

	select {
	case reload := <-w.Reloads():
		t.Errorf("burst write should have been dropped, got %+v", reload)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseStopsDelivery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	writeFile(t, path, "a: 1\n")

	w, err := New(path, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	select {
	case _, ok := <-w.Reloads():
		if ok {
			t.Error("reload delivered after Close()")
		}
	case <-time.After(time.Second):
		t.Error("reloads channel should close")
	}
}
