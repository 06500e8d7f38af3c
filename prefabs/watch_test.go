package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsConfigWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "atlas.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case path := <-w.Events:
			if filepath.Ext(path) == ".txt" {
				t.Fatalf("non-config file reported: %s", path)
			}
			if SamePath(path, target) {
				return
			}
		case <-timeout:
			t.Fatalf("no event for %s", target)
		}
	}
}

func TestWatcherReportsFinalContentOfQuickWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "atlas.json")
	if err := os.WriteFile(target, []byte(`{"base": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	final := `{"base": [[0, 0, 8, 8]]}`
	if err := os.Truncate(target, 0); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := os.WriteFile(target, []byte(final), 0o644); err != nil {
		t.Fatal(err)
	}

	var got int
	timeout := time.After(5 * time.Second)
	for got == 0 {
		select {
		case path := <-w.Events:
			if !SamePath(path, target) {
				continue
			}
			got++
			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != final {
				t.Fatalf("reported while content was %q, want %q", b, final)
			}
		case <-timeout:
			t.Fatalf("no event for %s", target)
		}
	}

	quiet := time.After(4 * debounce)
	for {
		select {
		case path := <-w.Events:
			if SamePath(path, target) {
				t.Fatalf("quick writes reported more than once")
			}
		case <-quiet:
			return
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	w.Drain(func(string) { t.Fatalf("drained after close") })
}

func TestWatcherDrainErrors(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	w.Errors <- errors.New("overflow")
	var got []error
	w.DrainErrors(func(err error) { got = append(got, err) })
	if len(got) != 1 || got[0].Error() != "overflow" {
		t.Fatalf("drained %v", got)
	}
	w.DrainErrors(func(err error) { t.Fatalf("unexpected error %v", err) })
}

func TestIsConfigFile(t *testing.T) {
	tests := map[string]bool{
		"a.json":          true,
		"b.YAML":          true,
		"c.yml":           true,
		"d.png":           false,
		"e":               false,
		"dir/atlas.json~": false,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			if got := isConfigFile(path); got != want {
				t.Fatalf("isConfigFile(%q) = %v, want %v", path, got, want)
			}
		})
	}
}
