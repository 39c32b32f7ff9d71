package convert

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()

	out := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestDirSink(t *testing.T) {
	dst := t.TempDir()
	s := newDirSink(dst, false, testLogger(t))

	got, err := s.Put(filepath.Join("a", "b.txt"), []byte("hello"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if want := filepath.Join(dst, "a", "b.txt"); got != want {
		t.Errorf("Put() = %q, want %q", got, want)
	}
	if data, err := os.ReadFile(got); err != nil || string(data) != "hello" {
		t.Errorf("file content = %q, %v", data, err)
	}

	if _, err := s.Put(filepath.Join("a", "b.txt"), []byte("again")); !errors.Is(err, errOutputExists) {
		t.Errorf("Put() error = %v, want %v", err, errOutputExists)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDirSink_Overwrite(t *testing.T) {
	dst := t.TempDir()
	s := newDirSink(dst, true, testLogger(t))

	for _, body := range []string{"first", "second"} {
		if _, err := s.Put("doc.txt", []byte(body)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}
	if data, _ := os.ReadFile(filepath.Join(dst, "doc.txt")); string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}
}

func TestBundleSink(t *testing.T) {
	for _, fix := range []bool{false, true} {
		name := "plain"
		if fix {
			name = "fixed"
		}
		t.Run(name, func(t *testing.T) {
			arc := filepath.Join(t.TempDir(), "out", "bundle.zip")
			s, err := newBundleSink(arc, false, fix, testLogger(t))
			if err != nil {
				t.Fatalf("newBundleSink() error = %v", err)
			}

			if got, err := s.Put(filepath.Join("dir", "a.txt"), []byte("A")); err != nil || got != "dir/a.txt" {
				t.Fatalf("Put() = %q, %v", got, err)
			}
			if _, err := s.Put("b.txt", []byte("B")); err != nil {
				t.Fatalf("Put() error = %v", err)
			}
			if _, err := s.Put("b.txt", []byte("C")); !errors.Is(err, errOutputExists) {
				t.Errorf("Put() duplicate error = %v, want %v", err, errOutputExists)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			got := readArchive(t, arc)
			if len(got) != 2 || got["dir/a.txt"] != "A" || got["b.txt"] != "B" {
				t.Errorf("archive content = %v", got)
			}

			leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(arc), "*.tmp"))
			if len(leftovers) != 0 {
				t.Errorf("temporary files left: %v", leftovers)
			}

			if fix {
				r, err := fixzip.OpenReader(arc)
				if err != nil {
					t.Fatalf("open archive: %v", err)
				}
				defer r.Close()
				for _, f := range r.File {
					if f.Flags&fixzip.FlagDataDescriptor != 0 {
						t.Errorf("entry %s still uses data descriptor", f.Name)
					}
				}
			}
		})
	}
}

func TestBundleSink_Exists(t *testing.T) {
	arc := filepath.Join(t.TempDir(), "bundle.zip")
	if err := os.WriteFile(arc, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := newBundleSink(arc, false, false, testLogger(t)); !errors.Is(err, errOutputExists) {
		t.Errorf("newBundleSink() error = %v, want %v", err, errOutputExists)
	}

	s, err := newBundleSink(arc, true, false, testLogger(t))
	if err != nil {
		t.Fatalf("newBundleSink() with overwrite error = %v", err)
	}
	if _, err := s.Put("a.txt", []byte("A")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if got := readArchive(t, arc); got["a.txt"] != "A" {
		t.Errorf("archive content = %v", got)
	}
}

func TestBundleSink_CloseFailureRemovesTemporary(t *testing.T) {
	arc := filepath.Join(t.TempDir(), "bundle.zip")
	s, err := newBundleSink(arc, false, true, testLogger(t))
	if err != nil {
		t.Fatalf("newBundleSink() error = %v", err)
	}
	if _, err := s.Put("a.txt", []byte("A")); err != nil {
		t.Fatal(err)
	}

	// archive writer cannot flush into a closed file
	if err := s.out.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err == nil {
		t.Error("Close() expected error")
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(arc), "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left: %v", leftovers)
	}
}
