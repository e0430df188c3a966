package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type zipEntry struct {
	name    string
	content string
}

func writeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "bundle.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finalize zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := writeZip(t, []zipEntry{
		{"tables.yaml", "name: tables"},
		{"docs/readme.txt", "readme"},
		{"lists/menu.YML", "name: menu"},
		{"lists/", ""},
	})

	var visited []string
	contents := map[string]string{}
	err := Walk(zipPath, []string{".yaml", ".yml"}, func(name string, data []byte) error {
		visited = append(visited, name)
		contents[name] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if want := []string{"tables.yaml", "lists/menu.YML"}; !slices.Equal(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
	if contents["lists/menu.YML"] != "name: menu" {
		t.Errorf("unexpected content %q", contents["lists/menu.YML"])
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	zipPath := writeZip(t, []zipEntry{{"a.yaml", "a"}, {"b.yaml", "b"}})

	stop := errors.New("stop")
	count := 0
	err := Walk(zipPath, []string{".yaml"}, func(string, []byte) error {
		count++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if count != 1 {
		t.Errorf("walkFn called %d times, want 1", count)
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := writeZip(t, []zipEntry{{"ok.yaml", "ok"}, {"../evil.yaml", "evil"}})

	called := false
	err := Walk(zipPath, []string{".yaml"}, func(string, []byte) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error for unsafe entry")
	}
	if called {
		t.Error("walkFn must not be called when archive has unsafe entries")
	}
}

func TestWalk_NotArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.yaml")
	if err := os.WriteFile(path, []byte("name: x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(path, []string{".yaml"}, func(string, []byte) error { return nil }); err == nil {
		t.Error("expected error for non-zip file")
	}
}

func TestIsArchive(t *testing.T) {
	zipPath := writeZip(t, []zipEntry{{"a.yaml", "a"}})
	plain := filepath.Join(t.TempDir(), "plain.yaml")
	if err := os.WriteFile(plain, []byte("name: x"), 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{zipPath, true},
		{plain, false},
		{empty, false},
	}
	for _, tt := range tests {
		got, err := IsArchive(tt.path)
		if err != nil {
			t.Errorf("IsArchive(%s) error = %v", tt.path, err)
		}
		if got != tt.expected {
			t.Errorf("IsArchive(%s) = %v, want %v", tt.path, got, tt.expected)
		}
	}

	if _, err := IsArchive(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"a.yaml", true},
		{"dir/a.yaml", true},
		{"dir/..x/a.yaml", true},
		{"/etc/a.yaml", false},
		{`\a.yaml`, false},
		{"../a.yaml", false},
		{`dir\..\a.yaml`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.expected {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
